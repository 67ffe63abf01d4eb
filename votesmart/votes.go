package votesmart

import "context"

// RatingService covers the Rating namespace
type RatingService struct {
	c *Client
}

// GetCategories returns the rating categories, optionally for one state
func (s *RatingService) GetCategories(ctx context.Context, stateID string) ([]Category, error) {
	return fetchList[Category](ctx, s.c, opRatingGetCategories, Params{"stateId": stateID})
}

// GetSigList returns the special interest groups of a category
func (s *RatingService) GetSigList(ctx context.Context, categoryID, stateID string) ([]Sig, error) {
	return fetchList[Sig](ctx, s.c, opRatingGetSigList, Params{
		"categoryId": categoryID,
		"stateId":    stateID,
	})
}

// GetSig returns one special interest group
func (s *RatingService) GetSig(ctx context.Context, sigID string) (*SigDetail, error) {
	return fetchOne[SigDetail](ctx, s.c, opRatingGetSig, Params{"sigId": sigID})
}

// GetCandidateRating returns interest group ratings of a candidate,
// optionally limited to one group
func (s *RatingService) GetCandidateRating(ctx context.Context, candidateID, sigID string) ([]Rating, error) {
	return fetchList[Rating](ctx, s.c, opRatingGetCandidateRating, Params{
		"candidateId": candidateID,
		"sigId":       sigID,
	})
}

// VotesService covers the Votes namespace
type VotesService struct {
	c *Client
}

// GetCategories returns the bill categories of a year, optionally in one state
func (s *VotesService) GetCategories(ctx context.Context, year, stateID string) ([]Category, error) {
	return fetchList[Category](ctx, s.c, opVotesGetCategories, Params{
		"year":    year,
		"stateId": stateID,
	})
}

// GetBill returns a bill with its sponsors, actions and amendments
func (s *VotesService) GetBill(ctx context.Context, billID string) (*BillDetail, error) {
	return fetchOne[BillDetail](ctx, s.c, opVotesGetBill, Params{"billId": billID})
}

// GetBillAction returns one action taken on a bill
func (s *VotesService) GetBillAction(ctx context.Context, actionID string) (*BillActionDetail, error) {
	return fetchOne[BillActionDetail](ctx, s.c, opVotesGetBillAction, Params{"actionId": actionID})
}

// GetBillActionVotes returns every vote cast on a bill action
func (s *VotesService) GetBillActionVotes(ctx context.Context, actionID string) ([]Vote, error) {
	return fetchList[Vote](ctx, s.c, opVotesGetBillActionVotes, Params{"actionId": actionID})
}

// GetBillActionVoteByOfficial returns how one official voted on a bill action
func (s *VotesService) GetBillActionVoteByOfficial(ctx context.Context, actionID, candidateID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillActionVoteByOff, Params{
		"actionId":    actionID,
		"candidateId": candidateID,
	})
}

// GetBillsByCategoryYearState returns the bills of a category in a year
func (s *VotesService) GetBillsByCategoryYearState(ctx context.Context, categoryID, year, stateID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsByCategoryYear, Params{
		"categoryId": categoryID,
		"year":       year,
		"stateId":    stateID,
	})
}

// GetBillsByYearState returns the bills of a year
func (s *VotesService) GetBillsByYearState(ctx context.Context, year, stateID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsByYearState, Params{
		"year":    year,
		"stateId": stateID,
	})
}

// GetBillsByOfficialYearOffice returns the bills an official voted on in a year
func (s *VotesService) GetBillsByOfficialYearOffice(ctx context.Context, candidateID, year, officeID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsByOfficialYear, Params{
		"candidateId": candidateID,
		"year":        year,
		"officeId":    officeID,
	})
}

// GetBillsByCandidateCategoryOffice returns the bills a candidate voted on in a category
func (s *VotesService) GetBillsByCandidateCategoryOffice(ctx context.Context, candidateID, categoryID, officeID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsByCandidateCat, Params{
		"candidateId": candidateID,
		"categoryId":  categoryID,
		"officeId":    officeID,
	})
}

// GetBillsBySponsorYear returns the bills a candidate sponsored in a year
func (s *VotesService) GetBillsBySponsorYear(ctx context.Context, candidateID, year string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsBySponsorYear, Params{
		"candidateId": candidateID,
		"year":        year,
	})
}

// GetBillsBySponsorCategory returns the bills a candidate sponsored in a category
func (s *VotesService) GetBillsBySponsorCategory(ctx context.Context, candidateID, categoryID string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsBySponsorCategory, Params{
		"candidateId": candidateID,
		"categoryId":  categoryID,
	})
}

// GetBillsByStateRecent returns the most recent bills. amount caps the count.
func (s *VotesService) GetBillsByStateRecent(ctx context.Context, stateID, amount string) ([]Bill, error) {
	return fetchList[Bill](ctx, s.c, opVotesGetBillsByStateRecent, Params{
		"stateId": stateID,
		"amount":  amount,
	})
}

// GetVetoes returns the vetoes issued by a candidate
func (s *VotesService) GetVetoes(ctx context.Context, candidateID string) ([]Veto, error) {
	return fetchList[Veto](ctx, s.c, opVotesGetVetoes, Params{"candidateId": candidateID})
}
