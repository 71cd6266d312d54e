package models

// UserProfileKey is the local storage key holding the signed-in profile
const UserProfileKey = "hubdispo-user"

// UserProfile is what the front-end keeps about the signed-in user
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Phone     string `json:"phone,omitempty"`
	Plan      string `json:"plan"`
}

// Subscription plans
const (
	PlanStarter    = "starter"
	PlanBusiness   = "business"
	PlanEnterprise = "enterprise"
)
