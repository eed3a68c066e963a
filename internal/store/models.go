package store

type Discipline struct {
	Code      string
	Name      string
	Area      string
	Theory    int64
	Practice  int64
	Extension int64
	Study     int64
}

type CurriculumEntry struct {
	Course     string
	Discipline string
	Bucket     string
}

type ChainGroupMember struct {
	Course     string
	Chain      string
	GroupIndex int64
	Position   int64
	Discipline string
}

type Prerequisite struct {
	Discipline string
	GroupIndex int64
	Position   int64
	Required   string
}
