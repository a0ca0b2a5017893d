package converter

import (
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
)

func RecordToResponse(record *entity.MedicalRecord) *dto.RecordResponse {
	if record == nil {
		return nil
	}

	return &dto.RecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		Filename:    record.Filename,
		FileType:    record.FileType,
		FilePath:    record.FilePath,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}

func RecordsToResponses(records []entity.MedicalRecord) []dto.RecordResponse {
	responses := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *RecordToResponse(&records[i]))
	}
	return responses
}
