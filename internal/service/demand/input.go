package demand

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

// CreateInput holds the fields of a new demand.
type CreateInput struct {
	Name                string
	Description         string
	Process             string
	CategoryIDs         []string
	SectorID            string
	ResponsibleUserName string
	ClientID            string
	UserID              string
	// DemandDate backdates the demand to this calendar date (YYYY-MM-DD or
	// RFC 3339). Empty means today.
	DemandDate string
}

// UpdateInput holds the editable fields of an existing demand.
// UserID is the acting user recorded in the history.
type UpdateInput struct {
	Name        string
	Description string
	Process     string
	CategoryIDs []string
	SectorID    string
	ClientID    string
	UserID      string
}

// UpdateEntryInput holds an update-thread entry as transported.
// VisibilityRestriction and Important must be the literal "true" or "false".
type UpdateEntryInput struct {
	UserName              string
	UserSector            string
	UserID                string
	Description           string
	VisibilityRestriction string
	Important             string
	Treatment             *string
}

// AttachInput is an uploaded attachment plus the entry that will carry it.
type AttachInput struct {
	DemandID    uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
	Entry       UpdateEntryInput
}

type demandFields struct {
	name, description, sectorID, clientID, userID string
	categoryIDs                                   []string
}

// validate checks the required demand fields and collects all errors.
func (f demandFields) validate() ([]uuid.UUID, []domain.FieldError) {
	var errs []domain.FieldError

	if strings.TrimSpace(f.name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is invalid"})
	}
	if strings.TrimSpace(f.description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "Description is invalid"})
	}

	ids, ok := parseCategoryIDs(f.categoryIDs)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "categoryID", Message: "Category Id invalid"})
	}

	if strings.TrimSpace(f.sectorID) == "" {
		errs = append(errs, domain.FieldError{Field: "sectorID", Message: "Sector Id is invalid"})
	}
	if strings.TrimSpace(f.clientID) == "" {
		errs = append(errs, domain.FieldError{Field: "clientID", Message: "Client Id is invalid"})
	}
	if strings.TrimSpace(f.userID) == "" {
		errs = append(errs, domain.FieldError{Field: "userID", Message: "User Id is invalid"})
	}
	return ids, errs
}

func parseCategoryIDs(raw []string) ([]uuid.UUID, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func (i CreateInput) fields() demandFields {
	return demandFields{
		name: i.Name, description: i.Description, sectorID: i.SectorID,
		clientID: i.ClientID, userID: i.UserID, categoryIDs: i.CategoryIDs,
	}
}

func (i UpdateInput) fields() demandFields {
	return demandFields{
		name: i.Name, description: i.Description, sectorID: i.SectorID,
		clientID: i.ClientID, userID: i.UserID, categoryIDs: i.CategoryIDs,
	}
}

// decode validates the entry and converts its text booleans.
func (i UpdateEntryInput) decode() (domain.UpdatePatch, error) {
	var errs []domain.FieldError

	if strings.TrimSpace(i.UserName) == "" {
		errs = append(errs, domain.FieldError{Field: "userName", Message: "User name is invalid"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "Description is invalid"})
	}
	visibility, ok := domain.ParseTextBool(i.VisibilityRestriction)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "visibilityRestriction", Message: "Visibility restriction is invalid"})
	}
	if strings.TrimSpace(i.UserSector) == "" {
		errs = append(errs, domain.FieldError{Field: "userSector", Message: "User sector is invalid"})
	}
	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "userID", Message: "User ID is invalid"})
	}
	important, ok := domain.ParseTextBool(i.Important)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "important", Message: "Important is invalid"})
	}

	if len(errs) > 0 {
		return domain.UpdatePatch{}, domain.NewValidationErrors(errs)
	}

	return domain.UpdatePatch{
		UserName:              i.UserName,
		UserSector:            i.UserSector,
		UserID:                i.UserID,
		Description:           i.Description,
		VisibilityRestriction: visibility,
		Important:             important,
		Treatment:             i.Treatment,
	}, nil
}

func validateSectorID(sectorID string) error {
	if strings.TrimSpace(sectorID) == "" {
		return domain.NewValidationError("sectorID", "Sector Id is invalid")
	}
	return nil
}
