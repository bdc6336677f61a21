package model

// Role names the three account kinds the marketplace knows about.
// Clients book trips, companies publish stations and an admin
// approves company registrations.
const (
	RoleClient  = "CLIENT"
	RoleCompany = "COMPANY"
	RoleAdmin   = "ADMIN"
)

// Company approval states. A company account is only usable for
// login and for appearing in client-facing directories once it has
// been moved to StatusApproved by an admin. Clients carry no status.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// User is a single account record. Client-only and company-only
// fields coexist on the one struct the way the persisted records do;
// which group is meaningful depends on Role.
//
// Fields:
//  ID           – opaque unique identifier, generated at signup.
//  Email        – login email. Uniqueness is not enforced by the store.
//  PasswordHash – bcrypt hash of the signup password.
//  Role         – CLIENT, COMPANY or ADMIN.
//  Name         – full name for a client, manager name for a company.
//  Phone        – contact phone (client).
//  NPI          – national personal identification string (client).
//  AvatarURL    – profile image reference (client).
//  CompanyName  – trading name shown to travelers (company).
//  BannerURL    – banner image reference (company).
//  IFU, RCCM    – registration number strings (company).
//  AnattURL     – mandatory accreditation document reference (company).
//  OtherDocsURL – optional supplemental document reference (company).
//  Status       – PENDING/APPROVED/REJECTED for companies, empty for clients.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	NPI          string `json:"npi,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	BannerURL    string `json:"banner_url,omitempty"`
	IFU          string `json:"ifu,omitempty"`
	RCCM         string `json:"rccm,omitempty"`
	AnattURL     string `json:"anatt_url,omitempty"`
	OtherDocsURL string `json:"other_docs_url,omitempty"`
	Status       string `json:"status,omitempty"`
}

// IsApprovedCompany reports whether the user is a company account
// that an admin has approved. Only such accounts may log in as a
// company or appear in traveler-facing listings.
func (u *User) IsApprovedCompany() bool {
	return u.Role == RoleCompany && u.Status == StatusApproved
}
