package ml

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/advisorlabs/course-advisor/pkg/logger"
)

var ErrNotFitted = errors.New("classifier has not been fitted")

const (
	defaultLearningRate = 0.5
	defaultTolerance    = 1e-6
	l2Penalty           = 1e-4
)

// LogisticRegression is a multinomial (softmax) classifier trained by
// batch gradient descent. Classes are held in lexicographic order, so an
// exact score tie resolves to the lexicographically smallest label.
type LogisticRegression struct {
	Classes   []string    `json:"classes"`
	Weights   [][]float64 `json:"weights"` // [feature][class]
	Intercept []float64   `json:"intercept"`
	Converged bool        `json:"converged"`
	Iters     int         `json:"iterations"`

	maxIter int
	lr      float64
	tol     float64
}

// NewLogisticRegression creates an untrained classifier with the given
// iteration bound.
func NewLogisticRegression(maxIter int) *LogisticRegression {
	return &LogisticRegression{
		maxIter: maxIter,
		lr:      defaultLearningRate,
		tol:     defaultTolerance,
	}
}

// Fit trains on the encoded feature rows and their labels. Training always
// terminates within the iteration bound; failing to reach the convergence
// tolerance logs a warning and keeps the best-effort parameters.
func (m *LogisticRegression) Fit(features [][]float64, labels []string) error {
	log := logger.WithComponent("classifier")

	if len(features) == 0 || len(features) != len(labels) {
		return errors.New("features and labels must be non-empty and the same length")
	}

	nSamples := len(features)
	nFeatures := len(features[0])
	for _, row := range features {
		if len(row) != nFeatures {
			return errors.New("feature rows must all have the same width")
		}
	}

	m.Classes = uniqueClasses(labels)
	nClasses := len(m.Classes)
	classIndex := make(map[string]int, nClasses)
	for i, c := range m.Classes {
		classIndex[c] = i
	}

	X := mat.NewDense(nSamples, nFeatures, nil)
	for i, row := range features {
		X.SetRow(i, row)
	}

	// one-hot target matrix
	Y := mat.NewDense(nSamples, nClasses, nil)
	for i, label := range labels {
		Y.Set(i, classIndex[label], 1)
	}

	W := mat.NewDense(nFeatures, nClasses, nil)
	bias := make([]float64, nClasses)

	var scores, probs, diff, grad mat.Dense
	prevLoss := math.Inf(1)
	m.Converged = false

	for iter := 0; iter < m.maxIter; iter++ {
		m.Iters = iter + 1

		scores.Mul(X, W)
		probs.Apply(func(i, j int, v float64) float64 { return v + bias[j] }, &scores)
		loss := softmaxRows(&probs, Y)

		// gradient of cross-entropy: Xᵀ(P − Y)/n, plus L2 shrinkage
		diff.Sub(&probs, Y)
		grad.Mul(X.T(), &diff)
		grad.Scale(1/float64(nSamples), &grad)

		var update mat.Dense
		update.Scale(m.lr, &grad)
		W.Sub(W, &update)
		W.Scale(1-m.lr*l2Penalty, W)

		for j := 0; j < nClasses; j++ {
			colSum := 0.0
			for i := 0; i < nSamples; i++ {
				colSum += diff.At(i, j)
			}
			bias[j] -= m.lr * colSum / float64(nSamples)
		}

		if math.Abs(prevLoss-loss) < m.tol {
			m.Converged = true
			break
		}
		prevLoss = loss
	}

	if !m.Converged {
		log.Warn().
			Int("max_iterations", m.maxIter).
			Float64("tolerance", m.tol).
			Msg("Training stopped at iteration bound before convergence; keeping best-effort parameters")
	}

	m.Weights = make([][]float64, nFeatures)
	for i := range m.Weights {
		m.Weights[i] = make([]float64, nClasses)
		for j := 0; j < nClasses; j++ {
			m.Weights[i][j] = W.At(i, j)
		}
	}
	m.Intercept = bias

	return nil
}

// Predict returns the class with maximum posterior probability for the
// encoded feature vector.
func (m *LogisticRegression) Predict(features []float64) (string, error) {
	probs, err := m.Proba(features)
	if err != nil {
		return "", err
	}

	best := 0
	for j := 1; j < len(probs); j++ {
		if probs[j] > probs[best] {
			best = j
		}
	}
	return m.Classes[best], nil
}

// Proba returns per-class posterior probabilities in class order.
func (m *LogisticRegression) Proba(features []float64) ([]float64, error) {
	if len(m.Classes) == 0 || len(m.Weights) == 0 {
		return nil, ErrNotFitted
	}
	if len(features) != len(m.Weights) {
		return nil, errors.New("feature vector width does not match trained model")
	}

	nClasses := len(m.Classes)
	scores := make([]float64, nClasses)
	for j := 0; j < nClasses; j++ {
		s := m.Intercept[j]
		for i, x := range features {
			s += x * m.Weights[i][j]
		}
		scores[j] = s
	}

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	sum := 0.0
	for j, s := range scores {
		scores[j] = math.Exp(s - maxScore)
		sum += scores[j]
	}
	for j := range scores {
		scores[j] /= sum
	}
	return scores, nil
}

// softmaxRows turns raw scores into probabilities in place and returns the
// mean cross-entropy loss against the one-hot targets.
func softmaxRows(scores *mat.Dense, targets *mat.Dense) float64 {
	rows, cols := scores.Dims()
	loss := 0.0

	for i := 0; i < rows; i++ {
		maxScore := scores.At(i, 0)
		for j := 1; j < cols; j++ {
			if s := scores.At(i, j); s > maxScore {
				maxScore = s
			}
		}

		sum := 0.0
		for j := 0; j < cols; j++ {
			e := math.Exp(scores.At(i, j) - maxScore)
			scores.Set(i, j, e)
			sum += e
		}

		for j := 0; j < cols; j++ {
			p := scores.At(i, j) / sum
			scores.Set(i, j, p)
			if targets.At(i, j) == 1 {
				loss -= math.Log(math.Max(p, 1e-15))
			}
		}
	}

	return loss / float64(rows)
}

func uniqueClasses(labels []string) []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)
	return classes
}
