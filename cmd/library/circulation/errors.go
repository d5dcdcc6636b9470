package circulation

import (
	"errors"
)

type ErrKind string

const (
	KindNotFound           ErrKind = "not_found"
	KindConflict           ErrKind = "conflict"
	KindPreconditionFailed ErrKind = "precondition_failed"
	KindInputFormat        ErrKind = "input_format"
	KindInternal           ErrKind = "internal"
)

type ErrResponse struct {
	Code    int
	Kind    ErrKind
	Message string
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseBookNotFound = ErrResponse{101, KindNotFound, "book not found"}
var ErrResponseMemberNotFound = ErrResponse{102, KindNotFound, "member not found"}
var ErrResponseBookConflict = ErrResponse{110, KindConflict, "a book with this id already exists"}
var ErrResponseMemberConflict = ErrResponse{111, KindConflict, "a member with this id already exists"}
var ErrResponseNoCopiesAvailable = ErrResponse{120, KindPreconditionFailed, "no copies available to borrow"}
var ErrResponseBorrowLimitReached = ErrResponse{121, KindPreconditionFailed, "borrow limit reached"}
var ErrResponseNotBorrowed = ErrResponse{122, KindPreconditionFailed, "book is not borrowed by this member"}
var ErrResponseBlankID = ErrResponse{130, KindInputFormat, "id must not be blank"}
var ErrResponseInvalidCopies = ErrResponse{131, KindInputFormat, "copies must be a positive integer"}
var ErrResponseInvalidInteger = ErrResponse{132, KindInputFormat, "expected an integer"}
var ErrResponseInvalidDate = ErrResponse{133, KindInputFormat, "expected a date in YYYY-MM-DD format"}
var ErrResponseInvalidChoice = ErrResponse{134, KindInputFormat, "invalid menu choice"}
var ErrResponseInventoryInconsistent = ErrResponse{140, KindInternal, "available copies out of range"}

// KindOf classifies err. Errors that carry no ErrResponse are internal.
func KindOf(err error) ErrKind {
	if err == nil {
		return ""
	}
	var errResp ErrResponse
	if errors.As(err, &errResp) {
		return errResp.Kind
	}
	return KindInternal
}
