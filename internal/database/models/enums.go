package models

// DeletionMode selects what happens to a user's content when the account is removed
type DeletionMode string

const (
	// DeletionModeDeleteAll purges the user's recipes and all of their activity
	DeletionModeDeleteAll DeletionMode = "delete_all"
	// DeletionModeKeepData detaches the user's content from the account and keeps it
	DeletionModeKeepData DeletionMode = "keep_data"
)

// IsValid checks if the DeletionMode is valid
func (m DeletionMode) IsValid() bool {
	switch m {
	case DeletionModeDeleteAll, DeletionModeKeepData:
		return true
	}
	return false
}
