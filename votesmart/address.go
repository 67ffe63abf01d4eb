package votesmart

import "context"

// AddressService covers the Address namespace
type AddressService struct {
	c *Client
}

// GetCampaign returns a candidate's campaign office addresses
func (s *AddressService) GetCampaign(ctx context.Context, candidateID string) ([]Address, error) {
	return fetchList[Address](ctx, s.c, opAddressGetCampaign, Params{"candidateId": candidateID})
}

// GetCampaignWebAddress returns a candidate's campaign web addresses
func (s *AddressService) GetCampaignWebAddress(ctx context.Context, candidateID string) ([]WebAddress, error) {
	return fetchList[WebAddress](ctx, s.c, opAddressGetCampaignWebAddress, Params{"candidateId": candidateID})
}

// GetCampaignByElection returns campaign addresses of every candidate in an election
func (s *AddressService) GetCampaignByElection(ctx context.Context, electionID string) ([]Address, error) {
	return fetchList[Address](ctx, s.c, opAddressGetCampaignByElection, Params{"electionId": electionID})
}

// GetOffice returns an official's office addresses
func (s *AddressService) GetOffice(ctx context.Context, candidateID string) ([]Address, error) {
	return fetchList[Address](ctx, s.c, opAddressGetOffice, Params{"candidateId": candidateID})
}

// GetOfficeWebAddress returns an official's office web addresses
func (s *AddressService) GetOfficeWebAddress(ctx context.Context, candidateID string) ([]WebAddress, error) {
	return fetchList[WebAddress](ctx, s.c, opAddressGetOfficeWebAddress, Params{"candidateId": candidateID})
}

// GetOfficeByOfficeState returns office addresses for an office, optionally
// limited to one state
func (s *AddressService) GetOfficeByOfficeState(ctx context.Context, officeID, stateID string) ([]Address, error) {
	return fetchList[Address](ctx, s.c, opAddressGetOfficeByOfficeState, Params{
		"officeId": officeID,
		"stateId":  stateID,
	})
}

// CandidateBioService covers the CandidateBio namespace
type CandidateBioService struct {
	c *Client
}

// GetBio returns a candidate's biography
func (s *CandidateBioService) GetBio(ctx context.Context, candidateID string) (*Bio, error) {
	return fetchOne[Bio](ctx, s.c, opCandidateBioGetBio, Params{"candidateId": candidateID})
}

// GetAddlBio returns additional biographical items
func (s *CandidateBioService) GetAddlBio(ctx context.Context, candidateID string) ([]AddlBio, error) {
	return fetchList[AddlBio](ctx, s.c, opCandidateBioGetAddlBio, Params{"candidateId": candidateID})
}
