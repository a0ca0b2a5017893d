package converter

import (
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
)

func QRMappingToResponse(mapping *entity.QRMapping) *dto.QRMappingResponse {
	if mapping == nil {
		return nil
	}

	return &dto.QRMappingResponse{
		ID:        mapping.ID,
		PatientID: mapping.PatientID,
		QRCode:    mapping.QRCode,
		CreatedAt: mapping.CreatedAt,
	}
}
