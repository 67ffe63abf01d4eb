package votesmart

// Typed views over records. Fixed fields cover what the service documents;
// everything else lands in Extra.

// Address is an office or campaign address merged with its phone and notes
type Address struct {
	Street   string         `mapstructure:"street"`
	City     string         `mapstructure:"city"`
	State    string         `mapstructure:"state"`
	Zip      string         `mapstructure:"zip"`
	Phone1   string         `mapstructure:"phone1"`
	Phone2   string         `mapstructure:"phone2"`
	Fax1     string         `mapstructure:"fax1"`
	Fax2     string         `mapstructure:"fax2"`
	TollFree string         `mapstructure:"tollFree"`
	Note     string         `mapstructure:"note"`
	Extra    map[string]any `mapstructure:",remain"`
}

// WebAddress is a website, email or social handle of a candidate
type WebAddress struct {
	WebAddressTypeID string         `mapstructure:"webAddressTypeId"`
	WebAddressType   string         `mapstructure:"webAddressType"`
	WebAddress       string         `mapstructure:"webAddress"`
	Extra            map[string]any `mapstructure:",remain"`
}

// Bio is a candidate's biographical profile
type Bio struct {
	CandidateID   string         `mapstructure:"candidateId"`
	CrpID         string         `mapstructure:"crpId"`
	FirstName     string         `mapstructure:"firstName"`
	NickName      string         `mapstructure:"nickName"`
	MiddleName    string         `mapstructure:"middleName"`
	LastName      string         `mapstructure:"lastName"`
	Suffix        string         `mapstructure:"suffix"`
	BirthDate     string         `mapstructure:"birthDate"`
	BirthPlace    string         `mapstructure:"birthPlace"`
	Pronunciation string         `mapstructure:"pronunciation"`
	Gender        string         `mapstructure:"gender"`
	Family        string         `mapstructure:"family"`
	Photo         string         `mapstructure:"photo"`
	HomeCity      string         `mapstructure:"homeCity"`
	HomeState     string         `mapstructure:"homeState"`
	Religion      string         `mapstructure:"religion"`
	Extra         map[string]any `mapstructure:",remain"`
}

// AddlBio is one additional biographical item
type AddlBio struct {
	Name  string         `mapstructure:"name"`
	Data  string         `mapstructure:"data"`
	Extra map[string]any `mapstructure:",remain"`
}

// Candidate is a candidate or sitting official as returned by the
// Candidates, Officials and Local namespaces
type Candidate struct {
	CandidateID        string         `mapstructure:"candidateId"`
	FirstName          string         `mapstructure:"firstName"`
	NickName           string         `mapstructure:"nickName"`
	MiddleName         string         `mapstructure:"middleName"`
	LastName           string         `mapstructure:"lastName"`
	Suffix             string         `mapstructure:"suffix"`
	Title              string         `mapstructure:"title"`
	BallotName         string         `mapstructure:"ballotName"`
	ElectionParties    string         `mapstructure:"electionParties"`
	ElectionStatus     string         `mapstructure:"electionStatus"`
	ElectionStage      string         `mapstructure:"electionStage"`
	ElectionOffice     string         `mapstructure:"electionOffice"`
	ElectionStateID    string         `mapstructure:"electionStateId"`
	ElectionYear       string         `mapstructure:"electionYear"`
	OfficeParties      string         `mapstructure:"officeParties"`
	OfficeStatus       string         `mapstructure:"officeStatus"`
	OfficeName         string         `mapstructure:"officeName"`
	OfficeStateID      string         `mapstructure:"officeStateId"`
	OfficeDistrictName string         `mapstructure:"officeDistrictName"`
	Extra              map[string]any `mapstructure:",remain"`
}

// String returns the candidate's full name
func (c Candidate) String() string {
	return joinNonEmpty(" ", c.Title, c.FirstName, c.MiddleName, c.LastName, c.Suffix)
}

// CommitteeType is a kind of legislative committee
type CommitteeType struct {
	CommitteeTypeID string         `mapstructure:"committeeTypeId"`
	Name            string         `mapstructure:"name"`
	Extra           map[string]any `mapstructure:",remain"`
}

// Committee is a committee summary
type Committee struct {
	CommitteeID     string         `mapstructure:"committeeId"`
	ParentID        string         `mapstructure:"parentId"`
	StateID         string         `mapstructure:"stateId"`
	CommitteeTypeID string         `mapstructure:"committeeTypeId"`
	Name            string         `mapstructure:"name"`
	Extra           map[string]any `mapstructure:",remain"`
}

// CommitteeDetail is a committee with its jurisdiction and contact data
type CommitteeDetail struct {
	CommitteeID     string         `mapstructure:"committeeId"`
	ParentID        string         `mapstructure:"parentId"`
	StateID         string         `mapstructure:"stateId"`
	CommitteeTypeID string         `mapstructure:"committeeTypeId"`
	Name            string         `mapstructure:"name"`
	Jurisdiction    string         `mapstructure:"jurisdiction"`
	Extra           map[string]any `mapstructure:",remain"`
}

// CommitteeMember is a member of a committee
type CommitteeMember struct {
	CandidateID string         `mapstructure:"candidateId"`
	Title       string         `mapstructure:"title"`
	FirstName   string         `mapstructure:"firstName"`
	MiddleName  string         `mapstructure:"middleName"`
	LastName    string         `mapstructure:"lastName"`
	Suffix      string         `mapstructure:"suffix"`
	Party       string         `mapstructure:"party"`
	Position    string         `mapstructure:"position"`
	Extra       map[string]any `mapstructure:",remain"`
}

// District is an electoral district
type District struct {
	DistrictID string         `mapstructure:"districtId"`
	Name       string         `mapstructure:"name"`
	OfficeID   string         `mapstructure:"officeId"`
	StateID    string         `mapstructure:"stateId"`
	Extra      map[string]any `mapstructure:",remain"`
}

// Election is an election with its stages
type Election struct {
	ElectionID   string         `mapstructure:"electionId"`
	Name         string         `mapstructure:"name"`
	StateID      string         `mapstructure:"stateId"`
	OfficeTypeID string         `mapstructure:"officeTypeId"`
	Special      string         `mapstructure:"special"`
	ElectionYear string         `mapstructure:"electionYear"`
	Stages       []Stage        `mapstructure:"stages"`
	Extra        map[string]any `mapstructure:",remain"`
}

// Stage is one stage of an election, such as a primary or general
type Stage struct {
	StageID        string         `mapstructure:"stageId"`
	Name           string         `mapstructure:"name"`
	StateID        string         `mapstructure:"stateId"`
	ElectionDate   string         `mapstructure:"electionDate"`
	FilingDeadline string         `mapstructure:"filingDeadline"`
	NpatMailed     string         `mapstructure:"npatMailed"`
	Extra          map[string]any `mapstructure:",remain"`
}

// String returns the stage name followed by its date, e.g. "Primary (2020-03-01)"
func (s Stage) String() string {
	return withParen(s.Name, s.ElectionDate)
}

// StageCandidate is a candidate running in an election stage
type StageCandidate struct {
	CandidateID string         `mapstructure:"candidateId"`
	FirstName   string         `mapstructure:"firstName"`
	MiddleName  string         `mapstructure:"middleName"`
	LastName    string         `mapstructure:"lastName"`
	Suffix      string         `mapstructure:"suffix"`
	Party       string         `mapstructure:"party"`
	Status      string         `mapstructure:"status"`
	Extra       map[string]any `mapstructure:",remain"`
}

// Leadership is a leadership position
type Leadership struct {
	LeadershipID string         `mapstructure:"leadershipId"`
	Name         string         `mapstructure:"name"`
	OfficeID     string         `mapstructure:"officeId"`
	OfficeName   string         `mapstructure:"officeName"`
	Extra        map[string]any `mapstructure:",remain"`
}

// Leader is an official holding a leadership position
type Leader struct {
	CandidateID string         `mapstructure:"candidateId"`
	FirstName   string         `mapstructure:"firstName"`
	MiddleName  string         `mapstructure:"middleName"`
	LastName    string         `mapstructure:"lastName"`
	Suffix      string         `mapstructure:"suffix"`
	Position    string         `mapstructure:"position"`
	OfficeID    string         `mapstructure:"officeId"`
	Title       string         `mapstructure:"title"`
	Extra       map[string]any `mapstructure:",remain"`
}

// County is a county local government
type County struct {
	LocalID string         `mapstructure:"localId"`
	Name    string         `mapstructure:"name"`
	URL     string         `mapstructure:"url"`
	Extra   map[string]any `mapstructure:",remain"`
}

// City is a city local government
type City struct {
	LocalID string         `mapstructure:"localId"`
	Name    string         `mapstructure:"name"`
	URL     string         `mapstructure:"url"`
	Extra   map[string]any `mapstructure:",remain"`
}

// Measure is a ballot measure summary
type Measure struct {
	MeasureID   string         `mapstructure:"measureId"`
	MeasureCode string         `mapstructure:"measureCode"`
	Title       string         `mapstructure:"title"`
	Outcome     string         `mapstructure:"outcome"`
	Extra       map[string]any `mapstructure:",remain"`
}

// MeasureDetail is a ballot measure with its text and results
type MeasureDetail struct {
	MeasureID    string         `mapstructure:"measureId"`
	MeasureCode  string         `mapstructure:"measureCode"`
	Title        string         `mapstructure:"title"`
	ElectionDate string         `mapstructure:"electionDate"`
	ElectionType string         `mapstructure:"electionType"`
	Outcome      string         `mapstructure:"outcome"`
	Yes          string         `mapstructure:"yes"`
	No           string         `mapstructure:"no"`
	Summary      string         `mapstructure:"summary"`
	SummaryURL   string         `mapstructure:"summaryUrl"`
	MeasureText  string         `mapstructure:"measureText"`
	TextURL      string         `mapstructure:"textUrl"`
	ProURL       string         `mapstructure:"proUrl"`
	ConURL       string         `mapstructure:"conUrl"`
	Extra        map[string]any `mapstructure:",remain"`
}

// Npat is a candidate's Political Courage Test status
type Npat struct {
	CandidateID   string         `mapstructure:"candidateId"`
	Candidate     string         `mapstructure:"candidate"`
	Passed        string         `mapstructure:"passed"`
	ElectionName  string         `mapstructure:"electionName"`
	ElectionDate  string         `mapstructure:"electionDate"`
	SurveyMessage string         `mapstructure:"surveyMessage"`
	Extra         map[string]any `mapstructure:",remain"`
}

// OfficeType is a category of office
type OfficeType struct {
	OfficeTypeID   string         `mapstructure:"officeTypeId"`
	OfficeLevelID  string         `mapstructure:"officeLevelId"`
	OfficeBranchID string         `mapstructure:"officeBranchId"`
	Name           string         `mapstructure:"name"`
	Extra          map[string]any `mapstructure:",remain"`
}

// OfficeBranch is a branch of government
type OfficeBranch struct {
	OfficeBranchID string         `mapstructure:"officeBranchId"`
	Name           string         `mapstructure:"name"`
	Extra          map[string]any `mapstructure:",remain"`
}

// OfficeLevel is a level of government
type OfficeLevel struct {
	OfficeLevelID string         `mapstructure:"officeLevelId"`
	Name          string         `mapstructure:"name"`
	Extra         map[string]any `mapstructure:",remain"`
}

// Office is an elected office
type Office struct {
	OfficeID       string         `mapstructure:"officeId"`
	OfficeTypeID   string         `mapstructure:"officeTypeId"`
	OfficeLevelID  string         `mapstructure:"officeLevelId"`
	OfficeBranchID string         `mapstructure:"officeBranchId"`
	Name           string         `mapstructure:"name"`
	Title          string         `mapstructure:"title"`
	ShortTitle     string         `mapstructure:"shortTitle"`
	Extra          map[string]any `mapstructure:",remain"`
}

// Category is an issue category used by ratings and votes
type Category struct {
	CategoryID string         `mapstructure:"categoryId"`
	Name       string         `mapstructure:"name"`
	Extra      map[string]any `mapstructure:",remain"`
}

// Sig is a special interest group summary
type Sig struct {
	SigID    string         `mapstructure:"sigId"`
	ParentID string         `mapstructure:"parentId"`
	Name     string         `mapstructure:"name"`
	Extra    map[string]any `mapstructure:",remain"`
}

// SigDetail is a special interest group with its contact data
type SigDetail struct {
	SigID       string         `mapstructure:"sigId"`
	ParentID    string         `mapstructure:"parentId"`
	StateID     string         `mapstructure:"stateId"`
	Name        string         `mapstructure:"name"`
	Description string         `mapstructure:"description"`
	Address     string         `mapstructure:"address"`
	City        string         `mapstructure:"city"`
	State       string         `mapstructure:"state"`
	Zip         string         `mapstructure:"zip"`
	Phone1      string         `mapstructure:"phone1"`
	Fax         string         `mapstructure:"fax"`
	Email       string         `mapstructure:"email"`
	URL         string         `mapstructure:"url"`
	ContactName string         `mapstructure:"contactName"`
	Extra       map[string]any `mapstructure:",remain"`
}

// Rating is a special interest group's rating of a candidate
type Rating struct {
	SigID      string         `mapstructure:"sigId"`
	RatingID   string         `mapstructure:"ratingId"`
	Timespan   string         `mapstructure:"timespan"`
	Rating     string         `mapstructure:"rating"`
	RatingText string         `mapstructure:"ratingText"`
	Extra      map[string]any `mapstructure:",remain"`
}

// State is a state summary
type State struct {
	StateID string         `mapstructure:"stateId"`
	Name    string         `mapstructure:"name"`
	Extra   map[string]any `mapstructure:",remain"`
}

// StateDetail is the full profile of a state
type StateDetail struct {
	StateID     string         `mapstructure:"stateId"`
	StateType   string         `mapstructure:"stateType"`
	Name        string         `mapstructure:"name"`
	NickName    string         `mapstructure:"nickName"`
	Capital     string         `mapstructure:"capital"`
	Area        string         `mapstructure:"area"`
	Population  string         `mapstructure:"population"`
	Statehood   string         `mapstructure:"statehood"`
	Motto       string         `mapstructure:"motto"`
	Flower      string         `mapstructure:"flower"`
	Tree        string         `mapstructure:"tree"`
	Bird        string         `mapstructure:"bird"`
	LargestCity string         `mapstructure:"largestCity"`
	Extra       map[string]any `mapstructure:",remain"`
}

// Bill is a bill summary
type Bill struct {
	BillID     string         `mapstructure:"billId"`
	BillNumber string         `mapstructure:"billNumber"`
	Title      string         `mapstructure:"title"`
	Type       string         `mapstructure:"type"`
	Stage      string         `mapstructure:"stage"`
	Vote       string         `mapstructure:"vote"`
	ActionID   string         `mapstructure:"actionId"`
	Extra      map[string]any `mapstructure:",remain"`
}

// String returns the bill number followed by its title
func (b Bill) String() string {
	return joinNonEmpty(" ", b.BillNumber, b.Title)
}

// BillDetail is a bill with its sponsors, actions and amendments
type BillDetail struct {
	BillID         string          `mapstructure:"billId"`
	BillNumber     string          `mapstructure:"billNumber"`
	ParentBillID   string          `mapstructure:"parentBillId"`
	Type           string          `mapstructure:"type"`
	Title          string          `mapstructure:"title"`
	OfficialTitle  string          `mapstructure:"officialTitle"`
	DateIntroduced string          `mapstructure:"dateIntroduced"`
	Sponsors       []BillSponsor   `mapstructure:"sponsors"`
	Actions        []BillAction    `mapstructure:"actions"`
	Amendments     []BillAmendment `mapstructure:"amendments"`
	Extra          map[string]any  `mapstructure:",remain"`
}

// String returns the bill number followed by its title
func (b BillDetail) String() string {
	return joinNonEmpty(" ", b.BillNumber, b.Title)
}

// BillSponsor is a sponsor or co-sponsor of a bill
type BillSponsor struct {
	CandidateID string         `mapstructure:"candidateId"`
	Name        string         `mapstructure:"name"`
	Type        string         `mapstructure:"type"`
	Extra       map[string]any `mapstructure:",remain"`
}

// BillAction is one recorded action on a bill
type BillAction struct {
	ActionID   string         `mapstructure:"actionId"`
	Level      string         `mapstructure:"level"`
	Stage      string         `mapstructure:"stage"`
	Outcome    string         `mapstructure:"outcome"`
	StatusDate string         `mapstructure:"statusDate"`
	Extra      map[string]any `mapstructure:",remain"`
}

// BillAmendment is an amendment to a bill
type BillAmendment struct {
	AmendmentID string         `mapstructure:"amendmentId"`
	Title       string         `mapstructure:"title"`
	StatusText  string         `mapstructure:"statusText"`
	StatusDate  string         `mapstructure:"statusDate"`
	ActionID    string         `mapstructure:"actionId"`
	Extra       map[string]any `mapstructure:",remain"`
}

// BillActionDetail is the full record of one bill action
type BillActionDetail struct {
	ActionID   string         `mapstructure:"actionId"`
	BillNumber string         `mapstructure:"billNumber"`
	Title      string         `mapstructure:"title"`
	Level      string         `mapstructure:"level"`
	Stage      string         `mapstructure:"stage"`
	Outcome    string         `mapstructure:"outcome"`
	Yea        string         `mapstructure:"yea"`
	Nay        string         `mapstructure:"nay"`
	VoiceVote  string         `mapstructure:"voiceVote"`
	Synopsis   string         `mapstructure:"synopsis"`
	RollNumber string         `mapstructure:"rollNumber"`
	StatusDate string         `mapstructure:"statusDate"`
	Extra      map[string]any `mapstructure:",remain"`
}

// Vote is how one official voted on a bill action
type Vote struct {
	CandidateID   string         `mapstructure:"candidateId"`
	CandidateName string         `mapstructure:"candidateName"`
	OfficeParties string         `mapstructure:"officeParties"`
	Action        string         `mapstructure:"action"`
	Extra         map[string]any `mapstructure:",remain"`
}

// Veto is a bill vetoed by an executive
type Veto struct {
	VetoID        string         `mapstructure:"vetoId"`
	StatusDate    string         `mapstructure:"statusDate"`
	BillNumber    string         `mapstructure:"billNumber"`
	BillTitle     string         `mapstructure:"billTitle"`
	VetoCode      string         `mapstructure:"vetoCode"`
	VetoLetterURL string         `mapstructure:"vetoLetterUrl"`
	Extra         map[string]any `mapstructure:",remain"`
}
