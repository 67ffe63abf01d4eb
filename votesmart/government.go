package votesmart

import "context"

// CommitteeService covers the Committee namespace
type CommitteeService struct {
	c *Client
}

// GetTypes returns the committee types
func (s *CommitteeService) GetTypes(ctx context.Context) ([]CommitteeType, error) {
	return fetchList[CommitteeType](ctx, s.c, opCommitteeGetTypes, nil)
}

// GetCommitteesByTypeState lists committees. Both filters are optional.
func (s *CommitteeService) GetCommitteesByTypeState(ctx context.Context, typeID, stateID string) ([]Committee, error) {
	return fetchList[Committee](ctx, s.c, opCommitteeGetCommitteesByType, Params{
		"typeId":  typeID,
		"stateId": stateID,
	})
}

// GetCommittee returns one committee
func (s *CommitteeService) GetCommittee(ctx context.Context, committeeID string) (*CommitteeDetail, error) {
	return fetchOne[CommitteeDetail](ctx, s.c, opCommitteeGetCommittee, Params{"committeeId": committeeID})
}

// GetCommitteeMembers returns the members of a committee
func (s *CommitteeService) GetCommitteeMembers(ctx context.Context, committeeID string) ([]CommitteeMember, error) {
	return fetchList[CommitteeMember](ctx, s.c, opCommitteeGetCommitteeMembers, Params{"committeeId": committeeID})
}

// LeadershipService covers the Leadership namespace
type LeadershipService struct {
	c *Client
}

// GetPositions returns leadership positions. Both filters are optional.
func (s *LeadershipService) GetPositions(ctx context.Context, stateID, officeID string) ([]Leadership, error) {
	return fetchList[Leadership](ctx, s.c, opLeadershipGetPositions, Params{
		"stateId":  stateID,
		"officeId": officeID,
	})
}

// GetCandidates returns the officials holding a leadership position
func (s *LeadershipService) GetCandidates(ctx context.Context, leadershipID, stateID string) ([]Leader, error) {
	return fetchList[Leader](ctx, s.c, opLeadershipGetCandidates, Params{
		"leadershipId": leadershipID,
		"stateId":      stateID,
	})
}

// OfficeService covers the Office namespace
type OfficeService struct {
	c *Client
}

// GetTypes returns the office types
func (s *OfficeService) GetTypes(ctx context.Context) ([]OfficeType, error) {
	return fetchList[OfficeType](ctx, s.c, opOfficeGetTypes, nil)
}

// GetBranches returns the branches of government
func (s *OfficeService) GetBranches(ctx context.Context) ([]OfficeBranch, error) {
	return fetchList[OfficeBranch](ctx, s.c, opOfficeGetBranches, nil)
}

// GetLevels returns the levels of government
func (s *OfficeService) GetLevels(ctx context.Context) ([]OfficeLevel, error) {
	return fetchList[OfficeLevel](ctx, s.c, opOfficeGetLevels, nil)
}

// GetOfficesByType returns the offices of one type
func (s *OfficeService) GetOfficesByType(ctx context.Context, typeID string) ([]Office, error) {
	return fetchList[Office](ctx, s.c, opOfficeGetOfficesByType, Params{"typeId": typeID})
}

// GetOfficesByLevel returns the offices at one level
func (s *OfficeService) GetOfficesByLevel(ctx context.Context, levelID string) ([]Office, error) {
	return fetchList[Office](ctx, s.c, opOfficeGetOfficesByLevel, Params{"levelId": levelID})
}

// GetOfficesByTypeLevel returns the offices of one type at one level
func (s *OfficeService) GetOfficesByTypeLevel(ctx context.Context, typeID, levelID string) ([]Office, error) {
	return fetchList[Office](ctx, s.c, opOfficeGetOfficesByTypeLevel, Params{
		"typeId":  typeID,
		"levelId": levelID,
	})
}

// GetOfficesByBranchLevel returns the offices of one branch at one level
func (s *OfficeService) GetOfficesByBranchLevel(ctx context.Context, branchID, levelID string) ([]Office, error) {
	return fetchList[Office](ctx, s.c, opOfficeGetOfficesByBranchLevel, Params{
		"branchId": branchID,
		"levelId":  levelID,
	})
}
