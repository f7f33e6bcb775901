// internal/models/profile.go
package models

// ApplicantProfile is the client-side view of a user profile as served
// by GET /profile. No field is required to be non-empty here; the
// backend owns validation.
type ApplicantProfile struct {
	UserID         string            `json:"user_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	GraduationYear string            `json:"graduation_year"`
	Degree         string            `json:"degree"`
	Resume         string            `json:"resume"`
	Answers        map[string]string `json:"answers"`
	JobAlerts      bool              `json:"job_alerts"`
	AutoApply      bool              `json:"auto_apply"`
}

// Clone returns a deep copy. Submission snapshots are always clones so
// no two correction rounds share a mutable Answers map.
func (p ApplicantProfile) Clone() ApplicantProfile {
	out := p
	out.Answers = make(map[string]string, len(p.Answers))
	for k, v := range p.Answers {
		out.Answers[k] = v
	}
	return out
}

// SetField assigns value to a top-level attribute when name matches
// one, otherwise to the answers map (creating the entry if absent).
// Resolution order matches the submission correction flow.
func (p *ApplicantProfile) SetField(name, value string) {
	switch name {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "graduation_year":
		p.GraduationYear = value
	case "degree":
		p.Degree = value
	case "resume":
		p.Resume = value
	default:
		if p.Answers == nil {
			p.Answers = make(map[string]string)
		}
		p.Answers[name] = value
	}
}
