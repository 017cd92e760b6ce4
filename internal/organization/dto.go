package organization

type CreateOrganizationRequest struct {
	OrganizationID string  `json:"organizationId" binding:"required,max=255"`
	Name           string  `json:"name" binding:"required,max=255"`
	Scope          string  `json:"scope" binding:"omitempty,oneof=university college department"`
	Type           string  `json:"type" binding:"max=50"`
	Description    string  `json:"description"`
	Address        string  `json:"address" binding:"max=255"`
	ContactEmail   string  `json:"contactEmail" binding:"omitempty,email,max=255"`
	ContactPhone   string  `json:"contactPhone" binding:"max=255"`
	Status         string  `json:"status" binding:"omitempty,oneof=active inactive"`
	FoundedDate    *string `json:"foundedDate"` // YYYY-MM-DD
}

type UpdateOrganizationRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Scope        *string `json:"scope" binding:"omitempty,oneof=university college department"`
	Type         *string `json:"type" binding:"omitempty,max=50"`
	Description  *string `json:"description"`
	Address      *string `json:"address" binding:"omitempty,max=255"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email,max=255"`
	ContactPhone *string `json:"contactPhone" binding:"omitempty,max=255"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
	FoundedDate  *string `json:"foundedDate"` // YYYY-MM-DD
}

type AddMembershipRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,max=10"`
	Role          string `json:"role" binding:"max=14"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive alumni expelled suspended"`
	Semester      string `json:"semester" binding:"omitempty,semester"`
	AcademicYear  string `json:"academicYear" binding:"omitempty,academicyear"`
	Committee     string `json:"committee" binding:"max=255"`
}

type UpdateMembershipRequest struct {
	Role         *string `json:"role" binding:"omitempty,max=14"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive alumni expelled suspended"`
	Semester     *string `json:"semester" binding:"omitempty,semester"`
	AcademicYear *string `json:"academicYear" binding:"omitempty,academicyear"`
	Committee    *string `json:"committee" binding:"omitempty,max=255"`
}

// MembershipRow is one ledger row joined with the member's name, the shape
// the dashboard's membership table renders.
type MembershipRow struct {
	StudentNumber string `json:"studentNumber"`
	MemberName    string `json:"memberName"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Semester      string `json:"semester"`
	AcademicYear  string `json:"academicYear"`
	Committee     string `json:"committee"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
