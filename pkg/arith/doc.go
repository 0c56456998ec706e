/*
Package arith provides everything around the machine that deals with numbers rather
than state: validating operand text, converting between binary and decimal, the
independent decimal cross-check, and scanning a finished tape for binary numbers.

Values are math/big integers so operands of any length convert without overflow.
*/
package arith
