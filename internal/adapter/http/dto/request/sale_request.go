package request

type AssignParticipantRequest struct {
	ParticipantType string `json:"participantType" binding:"required"`
	ParticipantID   string `json:"participantId" binding:"required"`
}
