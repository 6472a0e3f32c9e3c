package store

// Name identifies one collection in the store. The set of collections is
// fixed and versioned together with the schema.
type Name string

const (
	Routines       Name = "routines"
	RoutineLogs    Name = "routineLogs"
	Tasks          Name = "tasks"
	TaskLogs       Name = "taskLogs"
	Actions        Name = "actions"
	Goals          Name = "goals"
	GoalCategories Name = "goalCategories"
	LifePrinciples Name = "lifePrinciples"
	Visualizations Name = "visualizations"
	MoodLogs       Name = "moodLogs"
	Settings       Name = "settings"
)

// SchemaVersion is bumped whenever the physical layout changes. A database
// carrying any other version is reset on Initialize.
const SchemaVersion = 1

func AllCollections() []Name {
	return []Name{
		Routines,
		RoutineLogs,
		Tasks,
		TaskLogs,
		Actions,
		Goals,
		GoalCategories,
		LifePrinciples,
		Visualizations,
		MoodLogs,
		Settings,
	}
}

// recordRow is the single physical table behind every collection: the
// canonical JSON body of a record keyed by (collection, id).
type recordRow struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Body       []byte `gorm:"not null"`
}

func (recordRow) TableName() string { return "records" }

type schemaVersionRow struct {
	Key     string `gorm:"primaryKey;size:32"`
	Version int    `gorm:"not null"`
}

func (schemaVersionRow) TableName() string { return "store_meta" }

const schemaVersionKey = "schema"

type collectionRow struct {
	Name string `gorm:"primaryKey;size:64"`
}

func (collectionRow) TableName() string { return "store_collections" }
