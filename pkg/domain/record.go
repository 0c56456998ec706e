package domain

import "time"

// BinaryRun is a maximal run of 0/1 cells found on a tape.
type BinaryRun struct {
	Start   int    `json:"start" yaml:"start"`
	Binary  string `json:"binary" yaml:"binary"`
	Decimal string `json:"decimal" yaml:"decimal"`
}

// Record is the persisted outcome of one calculation.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Operation Operation `json:"operation"`
	Table     string    `json:"table"`
	Left      string    `json:"left"`
	Right     string    `json:"right"`

	InputTape string     `json:"input_tape"`
	FinalTape string     `json:"final_tape"`
	Capacity  int        `json:"capacity"`
	Head      int        `json:"head"`
	State     int        `json:"state"`
	Terminal  int        `json:"terminal"`
	Steps     int        `json:"steps"`
	Reason    HaltReason `json:"reason"`
	Exhausted bool       `json:"exhausted"`
	Visited   []int      `json:"visited,omitempty"`

	Runs        []BinaryRun `json:"runs"`
	Significant string      `json:"significant,omitempty"`

	ExpectedDecimal string `json:"expected_decimal"`
	ExpectedBinary  string `json:"expected_binary"`

	Problems []string `json:"problems,omitempty"`
}

// Configuration rebuilds the final machine snapshot stored in the record.
func (r *Record) Configuration() *Configuration {
	capacity := r.Capacity
	if capacity < len(r.FinalTape) {
		capacity = len(r.FinalTape)
	}
	if capacity <= r.Head {
		capacity = r.Head + 1
	}
	cells := make([]Symbol, capacity)
	for i := range cells {
		cells[i] = Blank
	}
	for i := 0; i < len(r.FinalTape); i++ {
		cells[i] = SymbolFromByte(r.FinalTape[i])
	}
	return &Configuration{
		Tape:  &Tape{cells: cells},
		Head:  r.Head,
		State: r.State,
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	if r.Runs != nil {
		c.Runs = append([]BinaryRun(nil), r.Runs...)
	}
	if r.Visited != nil {
		c.Visited = append([]int(nil), r.Visited...)
	}
	if r.Problems != nil {
		c.Problems = append([]string(nil), r.Problems...)
	}
	return &c
}
