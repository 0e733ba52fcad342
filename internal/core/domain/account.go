package domain

// AccountState is the part of view_account a lookup reports.
// Amount is the balance in yoctoNEAR as the node returns it, a base-10 integer string.
type AccountState struct {
	Amount       string
	StorageUsage uint64
}

// NewAccountState is a simple constructor for the AccountState entity.
func NewAccountState(amount string, storageUsage uint64) AccountState {
	return AccountState{
		Amount:       amount,
		StorageUsage: storageUsage,
	}
}

// MaxActivityRecords is how many recent transactions a lookup asks for and keeps.
const MaxActivityRecords = 3

// DefaultActivityAction labels a transaction that has neither a method nor an action kind.
const DefaultActivityAction = "transaction"

// ActivityRecord is one recent transaction of an account.
type ActivityRecord struct {
	Action    string
	Timestamp Timestamp
}

// NewActivityRecord picks the first non-empty of method and actionKind as the label.
func NewActivityRecord(method, actionKind string, ts Timestamp) ActivityRecord {
	action := method
	if action == "" {
		action = actionKind
	}
	if action == "" {
		action = DefaultActivityAction
	}
	return ActivityRecord{Action: action, Timestamp: ts}
}

// CapActivity returns at most MaxActivityRecords records, keeping the source order.
func CapActivity(records []ActivityRecord) []ActivityRecord {
	if len(records) > MaxActivityRecords {
		return records[:MaxActivityRecords]
	}
	return records
}
