package inference

import (
	"context"
	"fmt"
)

// leaf marker in the flattened tree layout
const leafNode = -1

const (
	AggregationMean = "mean" // random forest
	AggregationSum  = "sum"  // gradient boosting
)

// Tree is one binary regression tree in the flattened array layout:
// node i is a leaf when ChildrenLeft[i] == -1, otherwise the walk goes
// left when x[Feature[i]] <= Threshold[i].
type Tree struct {
	ChildrenLeft  []int     `json:"children_left" yaml:"children_left"`
	ChildrenRight []int     `json:"children_right" yaml:"children_right"`
	Feature       []int     `json:"feature" yaml:"feature"`
	Threshold     []float64 `json:"threshold" yaml:"threshold"`
	Value         []float64 `json:"value" yaml:"value"`
}

func (t *Tree) validate(nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("%w: empty tree", ErrMalformedModel)
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("%w: tree arrays have different lengths", ErrMalformedModel)
	}
	for i := 0; i < n; i++ {
		if t.ChildrenLeft[i] == leafNode {
			continue
		}
		if t.ChildrenLeft[i] <= i || t.ChildrenLeft[i] >= n || t.ChildrenRight[i] <= i || t.ChildrenRight[i] >= n {
			return fmt.Errorf("%w: node %d has invalid children", ErrMalformedModel, i)
		}
		if t.Feature[i] < 0 || (nFeatures > 0 && t.Feature[i] >= nFeatures) {
			return fmt.Errorf("%w: node %d splits on feature %d", ErrMalformedModel, i, t.Feature[i])
		}
	}
	return nil
}

// children always have a larger index than their parent (checked in validate),
// so the walk terminates.
func (t *Tree) evaluate(row []float64) (float64, error) {
	node := 0
	for t.ChildrenLeft[node] != leafNode {
		f := t.Feature[node]
		if f >= len(row) {
			return 0, fmt.Errorf("%w: tree splits on feature %d, row has %d", ErrFeatureCount, f, len(row))
		}
		if row[f] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node], nil
}

// TreeEnsemble covers random forests (mean of trees) and gradient boosted
// trees (BaseScore + LearningRate * sum of trees).
type TreeEnsemble struct {
	NFeatures    int
	Aggregation  string
	BaseScore    float64
	LearningRate float64
	Trees        []Tree
}

func newTreeEnsemble(a artifact) (*TreeEnsemble, error) {
	if len(a.Trees) == 0 {
		return nil, fmt.Errorf("%w: tree ensemble has no trees", ErrMalformedModel)
	}
	nFeatures := a.NFeatures
	if nFeatures == 0 {
		nFeatures = len(a.FeatureNames)
	}
	m := &TreeEnsemble{
		NFeatures:    nFeatures,
		Aggregation:  a.Aggregation,
		BaseScore:    a.BaseScore,
		LearningRate: 1,
		Trees:        a.Trees,
	}
	if m.Aggregation == "" {
		m.Aggregation = AggregationMean
	}
	if m.Aggregation != AggregationMean && m.Aggregation != AggregationSum {
		return nil, fmt.Errorf("%w: aggregation %q", ErrMalformedModel, m.Aggregation)
	}
	if a.LearningRate != nil {
		m.LearningRate = *a.LearningRate
	}
	for i := range m.Trees {
		if err := m.Trees[i].validate(nFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return m, nil
}

func (m *TreeEnsemble) Name() string {
	if m.Aggregation == AggregationSum {
		return "gradient_boosting"
	}
	return "random_forest"
}

func (m *TreeEnsemble) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if m.NFeatures > 0 && len(row) != m.NFeatures {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrFeatureCount, m.NFeatures, len(row))
		}
		var total float64
		for i := range m.Trees {
			v, err := m.Trees[i].evaluate(row)
			if err != nil {
				return nil, err
			}
			total += v
		}
		if m.Aggregation == AggregationSum {
			out = append(out, m.BaseScore+m.LearningRate*total)
		} else {
			out = append(out, m.BaseScore+total/float64(len(m.Trees)))
		}
	}
	return out, nil
}
