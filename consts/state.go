package consts

// Session lifecycle states persisted alongside transcripts.
const (
	State_Active = "active"
	State_Done   = "done"
	State_Error  = "error"
)
