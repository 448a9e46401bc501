package sharing

import "github.com/google/uuid"

// Action identifies an operation checked by the access policy
type Action string

const (
	ActionReadList     Action = "read_list"
	ActionCreateList   Action = "create_list"
	ActionDeleteList   Action = "delete_list"
	ActionInviteToList Action = "invite_to_list"
	ActionAddItem      Action = "add_item"
	ActionRemoveItem   Action = "remove_item"
)

// Role is a user's relationship to a list, derived from ownership and the
// invite set rather than stored
type Role string

const (
	RoleOwner        Role = "owner"
	RoleCollaborator Role = "collaborator"
	RoleOutsider     Role = "outsider"
)

// RoleOf returns the user's role on this list
func (l *List) RoleOf(userID uuid.UUID) Role {
	if userID == l.OwnerID {
		return RoleOwner
	}
	if l.IsInvited(userID) {
		return RoleCollaborator
	}
	return RoleOutsider
}

// DenyReason explains a denied decision
type DenyReason string

const (
	ReasonNotOwner  DenyReason = "not_owner"
	ReasonNotMember DenyReason = "not_member"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow returns an allowing decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason
func Deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ResourceRef identifies the resource an action targets: a list snapshot,
// plus the item for item-scoped actions
type ResourceRef struct {
	List *List
	Item *Item
}

// ListRef builds a ResourceRef for a list-scoped action
func ListRef(list *List) ResourceRef {
	return ResourceRef{List: list}
}

// ItemRef builds a ResourceRef for an item-scoped action
func ItemRef(list *List, item *Item) ResourceRef {
	return ResourceRef{List: list, Item: item}
}

// Authorize decides whether the user may perform the action on the resource.
// It is pure and never errors; owners hold every right, collaborators may
// read and add items but not delete, invite, or remove.
func Authorize(userID uuid.UUID, action Action, ref ResourceRef) Decision {
	if action == ActionCreateList {
		// Creation has no existing owner to check; the caller becomes owner.
		return Allow()
	}

	role := ref.List.RoleOf(userID)

	switch action {
	case ActionReadList, ActionAddItem:
		if role == RoleOwner || role == RoleCollaborator {
			return Allow()
		}
		return Deny(ReasonNotMember)
	case ActionDeleteList, ActionInviteToList, ActionRemoveItem:
		switch role {
		case RoleOwner:
			return Allow()
		case RoleCollaborator:
			return Deny(ReasonNotOwner)
		default:
			return Deny(ReasonNotMember)
		}
	default:
		return Deny(ReasonNotMember)
	}
}

// AccessDeniedError carries a policy denial across the application layer
type AccessDeniedError struct {
	Action Action
	Reason DenyReason
}

// Error implements the error interface
func (e *AccessDeniedError) Error() string {
	return "access denied: " + string(e.Reason)
}

// NewAccessDeniedError creates an AccessDeniedError from a denied decision
func NewAccessDeniedError(action Action, decision Decision) *AccessDeniedError {
	return &AccessDeniedError{Action: action, Reason: decision.Reason}
}
