package profile

import (
	"socksflow/internal/domain/entity"
)

// Step is a page of the profile-completion wizard.
type Step int

const (
	StepContact Step = iota
	StepAddress
	StepSize
)

// Steps lists the wizard pages in order.
var Steps = []Step{StepContact, StepAddress, StepSize}

// String returns the step's slug, also used in form actions.
func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepAddress:
		return "address"
	case StepSize:
		return "size"
	default:
		return "unknown"
	}
}

// Title is the heading shown above the step.
func (s Step) Title() string {
	switch s {
	case StepContact:
		return "Contact details"
	case StepAddress:
		return "Delivery address"
	case StepSize:
		return "Size profile"
	default:
		return ""
	}
}

func (s Step) field() Field {
	switch s {
	case StepContact:
		return FieldPhone
	case StepAddress:
		return FieldAddress
	default:
		return FieldSize
	}
}

// Resolution is what the wizard should do for a user record.
type Resolution struct {
	Step     Step
	Terminal bool // No required step is unmet; redirect to the return target.
}

// ResolveStep selects the earliest unmet required step. Later unmet steps never
// take precedence. A nil user resolves to the first required step.
func ResolveStep(user *entity.User, reqs Requirements) Resolution {
	for _, step := range Steps {
		f := step.field()
		if !reqs.Requires(f) {
			continue
		}
		if user == nil || !satisfied(user, f) {
			return Resolution{Step: step}
		}
	}

	return Resolution{Terminal: true}
}

// Position returns the 1-based position of s among the required steps, and
// the number of required steps, for the progress indicator.
func (r Requirements) Position(s Step) (int, int) {
	pos, total := 0, 0
	for _, step := range Steps {
		if !r.Requires(step.field()) {
			continue
		}
		total++
		if step <= s {
			pos = total
		}
	}

	return pos, total
}
