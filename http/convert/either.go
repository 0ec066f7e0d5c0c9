package convert

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/convey/http/fail"
	"github.com/xy-planning-network/convey/http/resp"
)

// Either unifies two different Responder types under one. Exactly one
// branch is held; the tag is fixed at construction and conversion
// dispatches to whichever branch that is.
//
// Declare the combined type once and construct either branch:
//
//	type listResult = convert.Either[convert.Text, convert.Blob]
type Either[L, R Responder] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either holding the first branch.
func Left[L, R Responder](val L) Either[L, R] {
	return Either[L, R]{left: val}
}

// Right constructs an Either holding the second branch.
func Right[L, R Responder](val R) Either[L, R] {
	return Either[L, R]{right: val, isRight: true}
}

func (e Either[L, R]) Respond(r *http.Request) Outcome {
	if e.isRight {
		return &eitherOutcome{right: e.right.Respond(r), isRight: true}
	}

	return &eitherOutcome{left: e.left.Respond(r)}
}

// eitherOutcome mirrors Either at the outcome level: it holds exactly
// one branch's in-flight outcome and the tag never changes once set.
// Both branches' failures normalize into *fail.Failure on resolution.
type eitherOutcome struct {
	left    Outcome
	right   Outcome
	isRight bool
}

func (e *eitherOutcome) Await(ctx context.Context) (*resp.Response, error) {
	o := e.left
	if e.isRight {
		o = e.right
	}

	re, err := o.Await(ctx)
	if err != nil {
		return nil, fail.Normalize(err)
	}

	return re, nil
}
