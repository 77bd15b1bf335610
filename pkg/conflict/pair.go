package conflict

import (
	"errors"
	"fmt"
)

var ErrSelfConflict = errors.New("a student cannot conflict with themselves")

// ValidationError reports a conflict pair that was rejected before reaching the relation
type ValidationError struct {
	Student string
	Err     error
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid conflict pair for student \"%v\": %v", err.Student, err.Err)
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// Pair is an unordered pair of students. A is always the lexicographically smaller id
type Pair struct {
	A string
	B string
}

func NewPair(a, b string) (Pair, error) {
	if a == b {
		return Pair{}, &ValidationError{Student: a, Err: ErrSelfConflict}
	}
	return normalize(a, b), nil
}

func (pair Pair) String() string {
	return fmt.Sprintf("%v~%v", pair.A, pair.B)
}

// Other returns the endpoint opposite to student, and false if student is not part of the pair
func (pair Pair) Other(student string) (string, bool) {
	switch student {
	case pair.A:
		return pair.B, true
	case pair.B:
		return pair.A, true
	}
	return "", false
}

func normalize(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}
