package agestd

import "fmt"

// NoWorkbooksError indicates discovery found no matching workbooks.
type NoWorkbooksError struct {
	Dir string
}

func (e *NoWorkbooksError) Error() string {
	return fmt.Sprintf("no RoadStd Excel files found under %s", e.Dir)
}

// ConvertError represents a failure while extracting one sheet of a
// workbook.
type ConvertError struct {
	Book  string
	Sheet string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: sheet %q: %v", e.Book, e.Sheet, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(book, sheet string, err error) *ConvertError {
	return &ConvertError{Book: book, Sheet: sheet, Err: err}
}
