package component

import (
	"fmt"

	"github.com/milk9111/bonecollector/animation"
)

// Form is how much of its body a skeleton has grown back.
type Form uint8

const (
	FormOnlyHead Form = iota
	FormHalfBody
	FormFullBody
)

func (f Form) String() string {
	switch f {
	case FormOnlyHead:
		return "only_head"
	case FormHalfBody:
		return "half_body"
	case FormFullBody:
		return "full_body"
	}
	return "unknown"
}

func ParseForm(name string) (Form, error) {
	for f := FormOnlyHead; f <= FormFullBody; f++ {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("component: unknown form %q", name)
}

// Archetype returns the skeleton archetype rendered for f.
func (f Form) Archetype() animation.Archetype {
	switch f {
	case FormOnlyHead:
		return animation.SkellyOnlyHead
	case FormHalfBody:
		return animation.SkellyHalfBody
	case FormFullBody:
		return animation.SkellyFullBody
	}
	panic(fmt.Sprintf("component: unknown form %d", f))
}

// Cycle returns the form after f, wrapping from full body to head.
func (f Form) Cycle() Form {
	return (f + 1) % (FormFullBody + 1)
}

type SkellyForm struct {
	Form Form
}

var SkellyFormComponent = NewComponent[SkellyForm]()

// FormChangeRequest is a one-shot request to swap a skeleton's body.
type FormChangeRequest struct {
	Form Form
}

var FormChangeRequestComponent = NewComponent[FormChangeRequest]()
