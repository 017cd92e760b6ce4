package member

import "encoding/json"

type CreateMemberRequest struct {
	StudentNumber string  `json:"studentNumber" binding:"required,max=10"`
	Name          string  `json:"name" binding:"required,max=255"`
	DegreeProgram string  `json:"degreeProgram" binding:"max=255"`
	Age           int     `json:"age" binding:"omitempty,gte=0,lte=100"`
	Gender        string  `json:"gender" binding:"max=255"`
	DateGraduated *string `json:"dateGraduated"` // YYYY-MM-DD
}

// UpdateMemberRequest is a partial update. Only fields present in the JSON
// body are applied. dateGraduated needs presence tracking because
// "absent" and "null" mean different things: absent leaves the date alone,
// null clears it.
type UpdateMemberRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=255"`
	DegreeProgram *string `json:"degreeProgram" binding:"omitempty,max=255"`
	Age           *int    `json:"age" binding:"omitempty,gte=0,lte=100"`
	Gender        *string `json:"gender" binding:"omitempty,max=255"`
	DateGraduated *string `json:"dateGraduated"` // YYYY-MM-DD

	hasDateGraduated bool
}

func (r *UpdateMemberRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateMemberRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = UpdateMemberRequest(a)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	_, r.hasDateGraduated = fields["dateGraduated"]
	return nil
}

// HasDateGraduated reports whether the update body mentioned dateGraduated
// at all (with a value or with an explicit null).
func (r *UpdateMemberRequest) HasDateGraduated() bool {
	return r.hasDateGraduated
}

type DeleteMemberResponse struct {
	Message string `json:"message"`
}
