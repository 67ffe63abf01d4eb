package votesmart

import "context"

// DistrictService covers the District namespace
type DistrictService struct {
	c *Client
}

// GetByOfficeState returns the districts of an office in a state.
// districtName is optional.
func (s *DistrictService) GetByOfficeState(ctx context.Context, officeID, stateID, districtName string) ([]District, error) {
	return fetchList[District](ctx, s.c, opDistrictGetByOfficeState, Params{
		"officeId":     officeID,
		"stateId":      stateID,
		"districtName": districtName,
	})
}

// GetByZip returns the districts covering a zip code
func (s *DistrictService) GetByZip(ctx context.Context, zip5, zip4 string) ([]District, error) {
	return fetchList[District](ctx, s.c, opDistrictGetByZip, Params{
		"zip5": zip5,
		"zip4": zip4,
	})
}

// ElectionService covers the Election namespace
type ElectionService struct {
	c *Client
}

// GetElection returns one election with its stages
func (s *ElectionService) GetElection(ctx context.Context, electionID string) (*Election, error) {
	return fetchOne[Election](ctx, s.c, opElectionGetElection, Params{"electionId": electionID})
}

// GetElectionByYearState returns the elections of a year, optionally in one state
func (s *ElectionService) GetElectionByYearState(ctx context.Context, year, stateID string) ([]Election, error) {
	return fetchList[Election](ctx, s.c, opElectionGetElectionByYearState, Params{
		"year":    year,
		"stateId": stateID,
	})
}

// GetElectionByZip returns the elections for a zip code
func (s *ElectionService) GetElectionByZip(ctx context.Context, zip5, zip4, year string) ([]Election, error) {
	return fetchList[Election](ctx, s.c, opElectionGetElectionByZip, Params{
		"zip5": zip5,
		"zip4": zip4,
		"year": year,
	})
}

// GetStageCandidates returns the candidates running in one stage of an election
func (s *ElectionService) GetStageCandidates(ctx context.Context, electionID, stageID, party, districtID, stateID string) ([]StageCandidate, error) {
	return fetchList[StageCandidate](ctx, s.c, opElectionGetStageCandidates, Params{
		"electionId": electionID,
		"stageId":    stageID,
		"party":      party,
		"districtId": districtID,
		"stateId":    stateID,
	})
}

// MeasureService covers the Measure namespace
type MeasureService struct {
	c *Client
}

// GetMeasuresByYearState returns the ballot measures of a year in a state
func (s *MeasureService) GetMeasuresByYearState(ctx context.Context, year, stateID string) ([]Measure, error) {
	return fetchList[Measure](ctx, s.c, opMeasureGetMeasuresByYearState, Params{
		"year":    year,
		"stateId": stateID,
	})
}

// GetMeasure returns one ballot measure
func (s *MeasureService) GetMeasure(ctx context.Context, measureID string) (*MeasureDetail, error) {
	return fetchOne[MeasureDetail](ctx, s.c, opMeasureGetMeasure, Params{"measureId": measureID})
}

// NpatService covers the Npat namespace
type NpatService struct {
	c *Client
}

// GetNpat returns a candidate's Political Courage Test status
func (s *NpatService) GetNpat(ctx context.Context, candidateID string) (*Npat, error) {
	return fetchOne[Npat](ctx, s.c, opNpatGetNpat, Params{"candidateId": candidateID})
}

// StateService covers the State namespace
type StateService struct {
	c *Client
}

// GetStateIDs returns the id and name of every state
func (s *StateService) GetStateIDs(ctx context.Context) ([]State, error) {
	return fetchList[State](ctx, s.c, opStateGetStateIDs, nil)
}

// GetState returns the details of one state
func (s *StateService) GetState(ctx context.Context, stateID string) (*StateDetail, error) {
	return fetchOne[StateDetail](ctx, s.c, opStateGetState, Params{"stateId": stateID})
}
