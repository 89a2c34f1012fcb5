// Package intent routes a "subscribe to plan N" action to login, the profile
// modal or the subscription creation surface.
package intent

import (
	"strconv"

	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/navigation"
	"socksflow/internal/domain/profile"
)

// Outcome is the exclusive result of the gate.
type Outcome int

const (
	OutcomeLogin Outcome = iota
	OutcomeProfileModal
	OutcomeCreate
)

// String returns a stable name used in logs and journey events.
func (o Outcome) String() string {
	switch o {
	case OutcomeLogin:
		return "login_required"
	case OutcomeProfileModal:
		return "profile_required"
	case OutcomeCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Input is what the gate decides on.
type Input struct {
	PlanIndex     int
	Authenticated bool
	Completeness  profile.Completeness
}

// Decision is the gate's answer. Location is set for OutcomeLogin and OutcomeCreate;
// the modal fields are set for OutcomeProfileModal.
type Decision struct {
	Outcome   Outcome
	PlanIndex int
	Plan      entity.Plan
	Location  string

	Missing     []string // Items listed in the modal.
	CompleteURL string   // "Complete profile now".
	LaterURL    string   // "Later", back to the plan list.
}

// CreationURL is the subscription creation surface with the plan preselected.
func CreationURL(planIndex int) string {
	return constants.PathSubscriptions + "?" + constants.QueryCreate + "=true&" +
		constants.QueryPlan + "=" + strconv.Itoa(planIndex)
}

// Decide routes in. Invalid plan indices are normalised to the first plan
// before any URL is built, so a stale intent still lands somewhere valid.
func Decide(catalog entity.Catalog, rules navigation.Rules, in Input) Decision {
	index, plan := catalog.Resolve(in.PlanIndex)
	creation := CreationURL(index)

	switch {
	case !in.Authenticated:
		return Decision{
			Outcome:   OutcomeLogin,
			PlanIndex: index,
			Plan:      plan,
			Location:  rules.LoginURL(creation),
		}
	case !in.Completeness.Complete:
		missing := make([]string, len(in.Completeness.Missing))
		copy(missing, in.Completeness.Missing)

		return Decision{
			Outcome:     OutcomeProfileModal,
			PlanIndex:   index,
			Plan:        plan,
			Missing:     missing,
			CompleteURL: navigation.CompletionURL(creation),
			LaterURL:    constants.PathHome,
		}
	default:
		return Decision{
			Outcome:   OutcomeCreate,
			PlanIndex: index,
			Plan:      plan,
			Location:  creation,
		}
	}
}
