package votesmart

import (
	"sort"
	"strings"
)

// Shape describes whether an operation yields one result or a sequence
type Shape int

const (
	// ShapeSingle yields exactly one result
	ShapeSingle Shape = iota
	// ShapeList yields an ordered sequence of results
	ShapeList
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	if s == ShapeList {
		return "List"
	}
	return "Single"
}

// Kind tags the typed object a payload node is mapped into
type Kind string

const (
	KindAddress          Kind = "Address"
	KindWebAddress       Kind = "WebAddress"
	KindBio              Kind = "Bio"
	KindAddlBio          Kind = "AddlBio"
	KindCandidate        Kind = "Candidate"
	KindCommitteeType    Kind = "CommitteeType"
	KindCommittee        Kind = "Committee"
	KindCommitteeDetail  Kind = "CommitteeDetail"
	KindCommitteeMember  Kind = "CommitteeMember"
	KindDistrict         Kind = "District"
	KindElection         Kind = "Election"
	KindStage            Kind = "Stage"
	KindStageCandidate   Kind = "StageCandidate"
	KindLeadership       Kind = "Leadership"
	KindLeader           Kind = "Leader"
	KindCounty           Kind = "County"
	KindCity             Kind = "City"
	KindMeasure          Kind = "Measure"
	KindMeasureDetail    Kind = "MeasureDetail"
	KindNpat             Kind = "Npat"
	KindOfficeType       Kind = "OfficeType"
	KindOfficeBranch     Kind = "OfficeBranch"
	KindOfficeLevel      Kind = "OfficeLevel"
	KindOffice           Kind = "Office"
	KindCategory         Kind = "Category"
	KindSig              Kind = "Sig"
	KindSigDetail        Kind = "SigDetail"
	KindRating           Kind = "Rating"
	KindState            Kind = "State"
	KindStateDetail      Kind = "StateDetail"
	KindBill             Kind = "Bill"
	KindBillDetail       Kind = "BillDetail"
	KindBillSponsor      Kind = "BillSponsor"
	KindBillAction       Kind = "BillAction"
	KindBillAmendment    Kind = "BillAmendment"
	KindBillActionDetail Kind = "BillActionDetail"
	KindVote             Kind = "Vote"
	KindVeto             Kind = "Veto"
)

// Operation describes one remote call: how to request it and how to unwrap
// its response.
type Operation struct {
	// Name is the qualified remote name, e.g. "Candidates.getByOfficeState".
	Name     string
	Required []string
	Optional []string
	// Path is the sequence of envelope keys leading to the payload node.
	Path  []string
	Shape Shape
	Kind  Kind
}

// Namespace returns the part of the name before the dot
func (o Operation) Namespace() string {
	ns, _, _ := strings.Cut(o.Name, ".")
	return ns
}

// Method returns the part of the name after the dot
func (o Operation) Method() string {
	_, m, _ := strings.Cut(o.Name, ".")
	return m
}

// accepts reports whether name is a declared parameter of the operation
func (o Operation) accepts(name string) bool {
	for _, p := range o.Required {
		if p == name {
			return true
		}
	}
	for _, p := range o.Optional {
		if p == name {
			return true
		}
	}
	return false
}

func op(name string, path string, shape Shape, kind Kind, required []string, optional ...string) Operation {
	return Operation{
		Name:     name,
		Required: required,
		Optional: optional,
		Path:     strings.Split(path, "."),
		Shape:    shape,
		Kind:     kind,
	}
}

func req(names ...string) []string { return names }

// Operation names.
const (
	opAddressGetCampaign             = "Address.getCampaign"
	opAddressGetCampaignWebAddress   = "Address.getCampaignWebAddress"
	opAddressGetCampaignByElection   = "Address.getCampaignByElection"
	opAddressGetOffice               = "Address.getOffice"
	opAddressGetOfficeWebAddress     = "Address.getOfficeWebAddress"
	opAddressGetOfficeByOfficeState  = "Address.getOfficeByOfficeState"
	opCandidateBioGetBio             = "CandidateBio.getBio"
	opCandidateBioGetAddlBio         = "CandidateBio.getAddlBio"
	opCandidatesGetByOfficeState     = "Candidates.getByOfficeState"
	opCandidatesGetByOfficeTypeState = "Candidates.getByOfficeTypeState"
	opCandidatesGetByLastname        = "Candidates.getByLastname"
	opCandidatesGetByLevenstein      = "Candidates.getByLevenstein"
	opCandidatesGetByElection        = "Candidates.getByElection"
	opCandidatesGetByDistrict        = "Candidates.getByDistrict"
	opCandidatesGetByZip             = "Candidates.getByZip"
	opCommitteeGetTypes              = "Committee.getTypes"
	opCommitteeGetCommitteesByType   = "Committee.getCommitteesByTypeState"
	opCommitteeGetCommittee          = "Committee.getCommittee"
	opCommitteeGetCommitteeMembers   = "Committee.getCommitteeMembers"
	opDistrictGetByOfficeState       = "District.getByOfficeState"
	opDistrictGetByZip               = "District.getByZip"
	opElectionGetElection            = "Election.getElection"
	opElectionGetElectionByYearState = "Election.getElectionByYearState"
	opElectionGetElectionByZip       = "Election.getElectionByZip"
	opElectionGetStageCandidates     = "Election.getStageCandidates"
	opLeadershipGetPositions         = "Leadership.getPositions"
	opLeadershipGetCandidates        = "Leadership.getCandidates"
	opLocalGetCounties               = "Local.getCounties"
	opLocalGetCities                 = "Local.getCities"
	opLocalGetOfficials              = "Local.getOfficials"
	opMeasureGetMeasuresByYearState  = "Measure.getMeasuresByYearState"
	opMeasureGetMeasure              = "Measure.getMeasure"
	opNpatGetNpat                    = "Npat.getNpat"
	opOfficeGetTypes                 = "Office.getTypes"
	opOfficeGetBranches              = "Office.getBranches"
	opOfficeGetLevels                = "Office.getLevels"
	opOfficeGetOfficesByType         = "Office.getOfficesByType"
	opOfficeGetOfficesByLevel        = "Office.getOfficesByLevel"
	opOfficeGetOfficesByTypeLevel    = "Office.getOfficesByTypeLevel"
	opOfficeGetOfficesByBranchLevel  = "Office.getOfficesByBranchLevel"
	opOfficialsGetStatewide          = "Officials.getStatewide"
	opOfficialsGetByOfficeState      = "Officials.getByOfficeState"
	opOfficialsGetByLastname         = "Officials.getByLastname"
	opOfficialsGetByLevenstein       = "Officials.getByLevenstein"
	opOfficialsGetByElection         = "Officials.getByElection"
	opOfficialsGetByDistrict         = "Officials.getByDistrict"
	opOfficialsGetByZip              = "Officials.getByZip"
	opRatingGetCategories            = "Rating.getCategories"
	opRatingGetSigList               = "Rating.getSigList"
	opRatingGetSig                   = "Rating.getSig"
	opRatingGetCandidateRating       = "Rating.getCandidateRating"
	opStateGetStateIDs               = "State.getStateIDs"
	opStateGetState                  = "State.getState"
	opVotesGetCategories             = "Votes.getCategories"
	opVotesGetBill                   = "Votes.getBill"
	opVotesGetBillAction             = "Votes.getBillAction"
	opVotesGetBillActionVotes        = "Votes.getBillActionVotes"
	opVotesGetBillActionVoteByOff    = "Votes.getBillActionVoteByOfficial"
	opVotesGetBillsByCategoryYear    = "Votes.getBillsByCategoryYearState"
	opVotesGetBillsByYearState       = "Votes.getBillsByYearState"
	opVotesGetBillsByOfficialYear    = "Votes.getBillsByOfficialYearOffice"
	opVotesGetBillsByCandidateCat    = "Votes.getBillsByCandidateCategoryOffice"
	opVotesGetBillsBySponsorYear     = "Votes.getBillsBySponsorYear"
	opVotesGetBillsBySponsorCategory = "Votes.getBillsBySponsorCategory"
	opVotesGetBillsByStateRecent     = "Votes.getBillsByStateRecent"
	opVotesGetVetoes                 = "Votes.getVetoes"
)

var operationTable = []Operation{
	op(opAddressGetCampaign, "address.office", ShapeList, KindAddress, req("candidateId")),
	op(opAddressGetCampaignWebAddress, "webaddress.address", ShapeList, KindWebAddress, req("candidateId")),
	op(opAddressGetCampaignByElection, "address.office", ShapeList, KindAddress, req("electionId")),
	op(opAddressGetOffice, "address.office", ShapeList, KindAddress, req("candidateId")),
	op(opAddressGetOfficeWebAddress, "webaddress.address", ShapeList, KindWebAddress, req("candidateId")),
	op(opAddressGetOfficeByOfficeState, "address.office", ShapeList, KindAddress, req("officeId"), "stateId"),

	op(opCandidateBioGetBio, "bio.candidate", ShapeSingle, KindBio, req("candidateId")),
	op(opCandidateBioGetAddlBio, "addlbio.additional.item", ShapeList, KindAddlBio, req("candidateId")),

	op(opCandidatesGetByOfficeState, "candidateList.candidate", ShapeList, KindCandidate, req("officeId"), "stateId", "electionYear"),
	op(opCandidatesGetByOfficeTypeState, "candidateList.candidate", ShapeList, KindCandidate, req("officeTypeId"), "stateId", "electionYear"),
	op(opCandidatesGetByLastname, "candidateList.candidate", ShapeList, KindCandidate, req("lastName"), "electionYear"),
	op(opCandidatesGetByLevenstein, "candidateList.candidate", ShapeList, KindCandidate, req("lastName"), "electionYear"),
	op(opCandidatesGetByElection, "candidateList.candidate", ShapeList, KindCandidate, req("electionId")),
	op(opCandidatesGetByDistrict, "candidateList.candidate", ShapeList, KindCandidate, req("districtId"), "electionYear"),
	op(opCandidatesGetByZip, "candidateList.candidate", ShapeList, KindCandidate, req("zip5"), "zip4", "electionYear"),

	op(opCommitteeGetTypes, "committeeTypes.type", ShapeList, KindCommitteeType, nil),
	op(opCommitteeGetCommitteesByType, "committees.committee", ShapeList, KindCommittee, nil, "typeId", "stateId"),
	op(opCommitteeGetCommittee, "committee", ShapeSingle, KindCommitteeDetail, req("committeeId")),
	op(opCommitteeGetCommitteeMembers, "committeeMembers.member", ShapeList, KindCommitteeMember, req("committeeId")),

	op(opDistrictGetByOfficeState, "districtList.district", ShapeList, KindDistrict, req("officeId", "stateId"), "districtName"),
	op(opDistrictGetByZip, "districtList.district", ShapeList, KindDistrict, req("zip5"), "zip4"),

	op(opElectionGetElection, "elections.election", ShapeSingle, KindElection, req("electionId")),
	op(opElectionGetElectionByYearState, "elections.election", ShapeList, KindElection, req("year"), "stateId"),
	op(opElectionGetElectionByZip, "elections.election", ShapeList, KindElection, req("zip5"), "zip4", "year"),
	op(opElectionGetStageCandidates, "stageCandidates.candidate", ShapeList, KindStageCandidate, req("electionId", "stageId"), "party", "districtId", "stateId"),

	op(opLeadershipGetPositions, "leadership.position", ShapeList, KindLeadership, nil, "stateId", "officeId"),
	op(opLeadershipGetCandidates, "leaders.leader", ShapeList, KindLeader, req("leadershipId"), "stateId"),

	op(opLocalGetCounties, "counties.county", ShapeList, KindCounty, req("stateId")),
	op(opLocalGetCities, "cities.city", ShapeList, KindCity, req("stateId")),
	op(opLocalGetOfficials, "candidateList.candidate", ShapeList, KindCandidate, req("localId")),

	op(opMeasureGetMeasuresByYearState, "measures.measure", ShapeList, KindMeasure, req("year", "stateId")),
	op(opMeasureGetMeasure, "measure", ShapeSingle, KindMeasureDetail, req("measureId")),

	op(opNpatGetNpat, "npat", ShapeSingle, KindNpat, req("candidateId")),

	op(opOfficeGetTypes, "officeTypes.type", ShapeList, KindOfficeType, nil),
	op(opOfficeGetBranches, "branches.branch", ShapeList, KindOfficeBranch, nil),
	op(opOfficeGetLevels, "levels.level", ShapeList, KindOfficeLevel, nil),
	op(opOfficeGetOfficesByType, "offices.office", ShapeList, KindOffice, req("typeId")),
	op(opOfficeGetOfficesByLevel, "offices.office", ShapeList, KindOffice, req("levelId")),
	op(opOfficeGetOfficesByTypeLevel, "offices.office", ShapeList, KindOffice, req("typeId", "levelId")),
	op(opOfficeGetOfficesByBranchLevel, "offices.office", ShapeList, KindOffice, req("branchId", "levelId")),

	op(opOfficialsGetStatewide, "candidateList.candidate", ShapeList, KindCandidate, nil, "stateId"),
	op(opOfficialsGetByOfficeState, "candidateList.candidate", ShapeList, KindCandidate, req("officeId"), "stateId"),
	op(opOfficialsGetByLastname, "candidateList.candidate", ShapeList, KindCandidate, req("lastName")),
	op(opOfficialsGetByLevenstein, "candidateList.candidate", ShapeList, KindCandidate, req("lastName")),
	op(opOfficialsGetByElection, "candidateList.candidate", ShapeList, KindCandidate, req("electionId")),
	op(opOfficialsGetByDistrict, "candidateList.candidate", ShapeList, KindCandidate, req("districtId")),
	op(opOfficialsGetByZip, "candidateList.candidate", ShapeList, KindCandidate, req("zip5"), "zip4"),

	op(opRatingGetCategories, "categories.category", ShapeList, KindCategory, nil, "stateId"),
	op(opRatingGetSigList, "sigs.sig", ShapeList, KindSig, req("categoryId"), "stateId"),
	op(opRatingGetSig, "sig", ShapeSingle, KindSigDetail, req("sigId")),
	op(opRatingGetCandidateRating, "candidateRating.rating", ShapeList, KindRating, req("candidateId"), "sigId"),

	op(opStateGetStateIDs, "stateList.list.state", ShapeList, KindState, nil),
	op(opStateGetState, "state.details", ShapeSingle, KindStateDetail, req("stateId")),

	op(opVotesGetCategories, "categories.category", ShapeList, KindCategory, req("year"), "stateId"),
	op(opVotesGetBill, "bill", ShapeSingle, KindBillDetail, req("billId")),
	op(opVotesGetBillAction, "action", ShapeSingle, KindBillActionDetail, req("actionId")),
	op(opVotesGetBillActionVotes, "votes.vote", ShapeList, KindVote, req("actionId")),
	op(opVotesGetBillActionVoteByOff, "bills.bill", ShapeList, KindBill, req("actionId", "candidateId")),
	op(opVotesGetBillsByCategoryYear, "bills.bill", ShapeList, KindBill, req("categoryId", "year"), "stateId"),
	op(opVotesGetBillsByYearState, "bills.bill", ShapeList, KindBill, req("year"), "stateId"),
	op(opVotesGetBillsByOfficialYear, "bills.bill", ShapeList, KindBill, req("candidateId", "year"), "officeId"),
	op(opVotesGetBillsByCandidateCat, "bills.bill", ShapeList, KindBill, req("candidateId", "categoryId"), "officeId"),
	op(opVotesGetBillsBySponsorYear, "bills.bill", ShapeList, KindBill, req("candidateId", "year")),
	op(opVotesGetBillsBySponsorCategory, "bills.bill", ShapeList, KindBill, req("candidateId", "categoryId")),
	op(opVotesGetBillsByStateRecent, "bills.bill", ShapeList, KindBill, nil, "stateId", "amount"),
	op(opVotesGetVetoes, "vetoes.veto", ShapeList, KindVeto, req("candidateId")),
}

var operationsByName = func() map[string]Operation {
	m := make(map[string]Operation, len(operationTable))
	for _, o := range operationTable {
		m[o.Name] = o
	}
	return m
}()

// LookupOperation returns the descriptor for a qualified operation name.
// The match on the method part is case-sensitive, like the remote service.
func LookupOperation(name string) (Operation, bool) {
	o, ok := operationsByName[name]
	return o, ok
}

// Operations returns all operation descriptors sorted by name
func Operations() []Operation {
	ops := make([]Operation, len(operationTable))
	copy(ops, operationTable)
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Namespaces returns the distinct namespaces in the operation table, sorted
func Namespaces() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range operationTable {
		ns := o.Namespace()
		if _, ok := seen[ns]; ok {
			continue
		}
		seen[ns] = struct{}{}
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}
