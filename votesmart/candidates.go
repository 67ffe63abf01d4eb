package votesmart

import "context"

// CandidatesService covers the Candidates namespace.
// Optional arguments are skipped when empty.
type CandidatesService struct {
	c *Client
}

// GetByOfficeState returns candidates for an office in a state. electionYear is optional.
func (s *CandidatesService) GetByOfficeState(ctx context.Context, officeID, stateID, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByOfficeState, Params{
		"officeId":     officeID,
		"stateId":      stateID,
		"electionYear": electionYear,
	})
}

// GetByOfficeTypeState returns candidates for an office type in a state
func (s *CandidatesService) GetByOfficeTypeState(ctx context.Context, officeTypeID, stateID, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByOfficeTypeState, Params{
		"officeTypeId": officeTypeID,
		"stateId":      stateID,
		"electionYear": electionYear,
	})
}

// GetByLastname returns candidates with the given last name
func (s *CandidatesService) GetByLastname(ctx context.Context, lastName, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByLastname, Params{
		"lastName":     lastName,
		"electionYear": electionYear,
	})
}

// GetByLevenstein searches by last name allowing for misspellings
func (s *CandidatesService) GetByLevenstein(ctx context.Context, lastName, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByLevenstein, Params{
		"lastName":     lastName,
		"electionYear": electionYear,
	})
}

// GetByElection returns the candidates in an election
func (s *CandidatesService) GetByElection(ctx context.Context, electionID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByElection, Params{"electionId": electionID})
}

// GetByDistrict returns the candidates running in a district
func (s *CandidatesService) GetByDistrict(ctx context.Context, districtID, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByDistrict, Params{
		"districtId":   districtID,
		"electionYear": electionYear,
	})
}

// GetByZip returns candidates for a zip code. zip4 and electionYear are optional.
func (s *CandidatesService) GetByZip(ctx context.Context, zip5, zip4, electionYear string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opCandidatesGetByZip, Params{
		"zip5":         zip5,
		"zip4":         zip4,
		"electionYear": electionYear,
	})
}

// OfficialsService covers the Officials namespace: people currently in office
type OfficialsService struct {
	c *Client
}

// GetStatewide returns statewide officials, or federal ones when stateID is empty
func (s *OfficialsService) GetStatewide(ctx context.Context, stateID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetStatewide, Params{"stateId": stateID})
}

// GetByOfficeState returns officials holding an office, optionally in one state
func (s *OfficialsService) GetByOfficeState(ctx context.Context, officeID, stateID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByOfficeState, Params{
		"officeId": officeID,
		"stateId":  stateID,
	})
}

// GetByLastname returns officials with the given last name
func (s *OfficialsService) GetByLastname(ctx context.Context, lastName string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByLastname, Params{"lastName": lastName})
}

// GetByLevenstein searches officials by last name allowing for misspellings
func (s *OfficialsService) GetByLevenstein(ctx context.Context, lastName string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByLevenstein, Params{"lastName": lastName})
}

// GetByElection returns the officials running in an election
func (s *OfficialsService) GetByElection(ctx context.Context, electionID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByElection, Params{"electionId": electionID})
}

// GetByDistrict returns the officials representing a district
func (s *OfficialsService) GetByDistrict(ctx context.Context, districtID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByDistrict, Params{"districtId": districtID})
}

// GetByZip returns officials for a zip code. zip4 is optional.
func (s *OfficialsService) GetByZip(ctx context.Context, zip5, zip4 string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opOfficialsGetByZip, Params{
		"zip5": zip5,
		"zip4": zip4,
	})
}

// LocalService covers the Local namespace
type LocalService struct {
	c *Client
}

// GetCounties returns the counties of a state
func (s *LocalService) GetCounties(ctx context.Context, stateID string) ([]County, error) {
	return fetchList[County](ctx, s.c, opLocalGetCounties, Params{"stateId": stateID})
}

// GetCities returns the cities of a state
func (s *LocalService) GetCities(ctx context.Context, stateID string) ([]City, error) {
	return fetchList[City](ctx, s.c, opLocalGetCities, Params{"stateId": stateID})
}

// GetOfficials returns the officials of a county or city
func (s *LocalService) GetOfficials(ctx context.Context, localID string) ([]Candidate, error) {
	return fetchList[Candidate](ctx, s.c, opLocalGetOfficials, Params{"localId": localID})
}
