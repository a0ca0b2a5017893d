package converter

import (
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
)

// AccountToResponse converts an Account entity to its API view. The stored
// password never crosses this boundary.
func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}

	return &dto.AccountResponse{
		ID:                 account.ID,
		Role:               account.Role,
		Name:               account.Name,
		Age:                account.Age,
		Email:              account.Email,
		BloodGroup:         account.BloodGroup,
		Allergies:          account.Allergies,
		MedicalConditions:  account.MedicalConditions,
		RegularMedications: account.RegularMedications,
		Address:            account.Address,
		EmergencyContacts:  account.EmergencyContacts,
		Specialization:     account.Specialization,
		Experience:         account.Experience,
		Hospital:           account.Hospital,
		ContactNumber:      account.ContactNumber,
		WorkingHours:       account.WorkingHours,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

// AccountsToResponses converts a role listing.
func AccountsToResponses(accounts []entity.Account) []dto.AccountResponse {
	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, *AccountToResponse(&accounts[i]))
	}
	return responses
}

// AccountToRegistered converts to the registration response subset.
func AccountToRegistered(account *entity.Account) *dto.RegisteredAccount {
	if account == nil {
		return nil
	}

	return &dto.RegisteredAccount{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	}
}
