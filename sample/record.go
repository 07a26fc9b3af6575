package sample

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// Sample types as stored in dataset files.
const (
	TypeControl = "control"
	TypeTest    = "test"
)

// Question types as stored in dataset files.
const (
	QuestionStandard   = "standard"
	QuestionRelational = "relational"
)

// Record is the on-disk shape of one sample.
type Record struct {
	SampleID   int    `json:"sample_id"`
	SampleType string `json:"sample_type"`

	// ImagePath is reserved for a renderer; generation leaves it empty.
	ImagePath string `json:"image_path"`

	Question QuestionRecord `json:"question"`
	Grid     GridRecord     `json:"grid"`
	Answers  AnswersRecord  `json:"answers"`

	SelectionRuleType string `json:"selection_rule_type"`
	IsPhysics         bool   `json:"is_physics"`
	IsReversed        bool   `json:"is_reversed"`
}

// QuestionRecord flattens both question shapes into one tagged record.
type QuestionRecord struct {
	Type string `json:"question_type"`

	// Standard questions.
	TargetType        string          `json:"target_type,omitempty"`
	FilterCriteria    map[string]bool `json:"filter_criteria,omitempty"`
	SelectionRule     string          `json:"selection_rule,omitempty"`
	SelectionProperty string          `json:"selection_property,omitempty"`
	SelectionRuleType string          `json:"selection_rule_type,omitempty"`

	// Relational questions.
	ReferenceCriteria map[string]bool `json:"reference_criteria,omitempty"`
	SpatialRelation   string          `json:"spatial_relation,omitempty"`
	TargetCriteria    map[string]bool `json:"target_criteria,omitempty"`

	IsReversed      bool   `json:"is_reversed"`
	NaturalLanguage string `json:"natural_language"`
	FullQuestion    string `json:"full_question"`
}

// GridRecord stores the board flattened row-major from the top-left, one
// entry per cell so width*height entries total.
type GridRecord struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Items  []CellRecord `json:"items"`
}

// CellRecord is one cell: position, occlusion flag and the occupant, nil
// when empty.
type CellRecord struct {
	Position  Position     `json:"position"`
	IsBlocked bool         `json:"is_blocked"`
	Item      *item.Record `json:"item"`
}

// Position is a cell address with X the column and Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AnswersRecord stores both answer sets as row-major sorted [x, y] pairs.
type AnswersRecord struct {
	ParticipantCoordinates [][2]int `json:"participant_coordinates"`
	DirectorCoordinates    [][2]int `json:"director_coordinates"`
	IsAmbiguous            bool     `json:"is_ambiguous"`
}

// ToRecord flattens the sample for persistence under the given id and
// sample type ("control" or "test").
func (s *Sample) ToRecord(id int, sampleType string) (Record, error) {
	ambiguous, err := s.Ambiguous()
	if err != nil {
		return Record{}, errors.Wrapf(err, "flattening sample %d", id)
	}

	qr, err := serializeQuestion(s.Question)
	if err != nil {
		return Record{}, errors.Wrapf(err, "flattening sample %d", id)
	}

	cells := make([]CellRecord, 0, s.Grid.Width*s.Grid.Height)
	for row := 0; row < s.Grid.Height; row++ {
		for col := 0; col < s.Grid.Width; col++ {
			it, err := s.Grid.At(row, col)
			if err != nil {
				return Record{}, err
			}
			blocked, err := s.Grid.Occluded(row, col)
			if err != nil {
				return Record{}, err
			}
			cell := CellRecord{Position: Position{X: col, Y: row}, IsBlocked: blocked}
			if it != nil {
				rec := it.ToRecord()
				cell.Item = &rec
			}
			cells = append(cells, cell)
		}
	}

	return Record{
		SampleID:   id,
		SampleType: sampleType,
		Question:   qr,
		Grid:       GridRecord{Width: s.Grid.Width, Height: s.Grid.Height, Items: cells},
		Answers: AnswersRecord{
			ParticipantCoordinates: coordPairs(s.Answer),
			DirectorCoordinates:    coordPairs(s.DirectorAnswer),
			IsAmbiguous:            ambiguous,
		},
		SelectionRuleType: s.RuleKind.String(),
		IsPhysics:         s.IsPhysics,
		IsReversed:        s.IsReversed,
	}, nil
}

func serializeQuestion(q Questioner) (QuestionRecord, error) {
	switch v := q.(type) {
	case *question.Question:
		rule := ""
		if v.Rule != question.RuleNone {
			rule = v.Rule.String()
		}
		return QuestionRecord{
			Type:              QuestionStandard,
			TargetType:        v.TargetType,
			FilterCriteria:    v.Filter,
			SelectionRule:     rule,
			SelectionProperty: v.SelectionProperty,
			SelectionRuleType: v.RuleKind.String(),
			IsReversed:        v.Reversed,
			NaturalLanguage:   v.NaturalLanguage(true),
			FullQuestion:      v.FullQuestion(),
		}, nil
	case *question.RelationalQuestion:
		return QuestionRecord{
			Type:              QuestionRelational,
			ReferenceCriteria: v.Reference,
			SpatialRelation:   v.Relation.String(),
			TargetCriteria:    v.Target,
			IsReversed:        v.Reversed,
			NaturalLanguage:   v.NaturalLanguage(true),
			FullQuestion:      v.FullQuestion(),
		}, nil
	}
	return QuestionRecord{}, errors.AssertionFailedf("unsupported question type %T", q)
}

func coordPairs(s question.CoordSet) [][2]int {
	out := make([][2]int, 0, len(s))
	for _, c := range s.Sorted() {
		out = append(out, [2]int{c.X, c.Y})
	}
	return out
}
