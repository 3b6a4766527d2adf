package domain

import (
	"time"

	"github.com/google/uuid"
)

// ID document types recorded on a compliance record.
const (
	EulaIDNone     = "none"
	EulaIDINE      = "ine"
	EulaIDPassport = "passport"
	EulaIDOther    = "other"
)

// EULA-related domain errors.
var (
	ErrEulaNotFound     = &Error{Code: ENOTFOUND, Message: "Compliance record not found"}
	ErrDuplicateEulaRef = &Error{Code: ECONFLICT, Message: "A compliance record already exists for this server reference"}
)

// Eula is the contract compliance record for one provisioned server:
// whether the agreement was signed and whether an official ID document
// was received. ServerRef is the raw provisioning identifier and stays
// free text because imported sheets carry non-numeric values.
type Eula struct {
	ID             uuid.UUID
	ServerRef      string
	ServerURL      string
	Distributor    string
	Client         string
	ContractSigned bool
	ContractURL    string
	IDReceived     bool
	IDType         string
	IDDocumentURL  string
	SourceFile     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidEulaIDType reports whether t is a known ID document type.
func ValidEulaIDType(t string) bool {
	switch t {
	case EulaIDNone, EulaIDINE, EulaIDPassport, EulaIDOther:
		return true
	}
	return false
}
