package service

import "github.com/GunarsK-portfolio/user-service/internal/models"

// Policy is the access-control decision table. All methods are pure
// functions over the resolved actor and the target; the actor is always the
// freshly loaded account from Resolve, never a stale token claim.
type Policy struct{}

// CanView allows an actor to read a profile: their own, or any profile for
// admins.
func (Policy) CanView(actor *models.User, targetID int64) error {
	if actor.IsAdmin() || actor.ID == targetID {
		return nil
	}
	return ErrForbidden
}

// CanList allows listing all accounts. Admin only.
func (Policy) CanList(actor *models.User) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// CanUpdateProfile allows mutating name, email and password: the account
// owner or an admin.
func (Policy) CanUpdateProfile(actor *models.User, targetID int64) error {
	if actor.IsAdmin() || actor.ID == targetID {
		return nil
	}
	return ErrForbidden
}

// CanChangeRole allows mutating the role field. Admin only; a non-admin is
// rejected even when the submitted role equals the current one.
func (Policy) CanChangeRole(actor *models.User) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// CanDelete allows deleting the target account. Admin only, and never the
// actor's own account.
func (Policy) CanDelete(actor *models.User, targetID int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.ID == targetID {
		return ErrSelfDelete
	}
	return nil
}

// CanProvision allows admin-initiated account creation.
func (Policy) CanProvision(actor *models.User) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// RegistrationRole is the role stored for every newly created account,
// regardless of what the request supplied and of who created it.
func (Policy) RegistrationRole() models.Role {
	return models.RoleUser
}
