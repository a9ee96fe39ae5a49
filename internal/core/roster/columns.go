package roster

// Table names in the record store.
const (
	TableMissions = "missions"
	TablePilots   = "pilot_roster"
	TableDrones   = "drone_fleet"
)

// Column names shared by the record store and the evaluators.
const (
	ColProjectID         = "project_id"
	ColLocation          = "location"
	ColRequiredSkills    = "required_skills"
	ColRequiredCerts     = "required_certs"
	ColPriority          = "priority"
	ColStartDate         = "start_date"
	ColEndDate           = "end_date"
	ColPilotID           = "pilot_id"
	ColName              = "name"
	ColSkills            = "skills"
	ColCertifications    = "certifications"
	ColStatus            = "status"
	ColCurrentAssignment = "current_assignment"
	ColDroneID           = "drone_id"
	ColModel             = "model"
	ColCapabilities      = "capabilities"
)

// Columns lists each table's columns in display order.
var Columns = map[string][]string{
	TableMissions: {ColProjectID, ColLocation, ColRequiredSkills, ColRequiredCerts, ColPriority, ColStartDate, ColEndDate},
	TablePilots:   {ColPilotID, ColName, ColSkills, ColCertifications, ColLocation, ColStatus, ColCurrentAssignment},
	TableDrones:   {ColDroneID, ColModel, ColCapabilities, ColLocation, ColStatus, ColCurrentAssignment},
}

// KeyColumn returns the column that uniquely identifies a row of table.
func KeyColumn(table string) string {
	switch table {
	case TableMissions:
		return ColProjectID
	case TablePilots:
		return ColName
	case TableDrones:
		return ColDroneID
	}
	return ""
}
