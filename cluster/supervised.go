package cluster

import "math"

// SupervisedMetric scores agreement between a ground-truth label assignment
// and a predicted one. Scores are unitless; each metric documents its range.
type SupervisedMetric func(labelsTrue, labelsPred []int) (float64, error)

// epsDenominator guards divisions whose denominator can collapse to zero for
// degenerate labelings.
const epsDenominator = 1e-10

// MutualInfo computes the mutual information between two labelings in nats.
// Range [0, min(H(true), H(pred))]; not normalized.
func MutualInfo(labelsTrue, labelsPred []int) (float64, error) {
	c, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, err
	}
	return c.mutualInfo(), nil
}

// NormalizedMutualInfo computes mutual information normalized by the
// geometric mean of the marginal entropies. Range [0, 1].
func NormalizedMutualInfo(labelsTrue, labelsPred []int) (float64, error) {
	c, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, err
	}
	// Two identical trivial partitions agree perfectly.
	if len(c.rowSums) == 1 && len(c.colSums) == 1 {
		return 1.0, nil
	}
	ht := entropyCounts(c.rowSums, c.n)
	hp := entropyCounts(c.colSums, c.n)
	return c.mutualInfo() / math.Max(math.Sqrt(ht*hp), epsDenominator), nil
}

// AdjustedMutualInfo computes mutual information adjusted for chance against
// the hypergeometric null model:
//
//	AMI = (MI - E[MI]) / (max(H(true), H(pred)) - E[MI])
//
// Range roughly [-1, 1], with 1 for identical partitions and ~0 for
// independent ones.
func AdjustedMutualInfo(labelsTrue, labelsPred []int) (float64, error) {
	c, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, err
	}
	if len(c.rowSums) == 1 && len(c.colSums) == 1 {
		return 1.0, nil
	}
	mi := c.mutualInfo()
	emi := expectedMutualInfo(c.rowSums, c.colSums, c.n)
	ht := entropyCounts(c.rowSums, c.n)
	hp := entropyCounts(c.colSums, c.n)

	denom := math.Max(ht, hp) - emi
	if denom < 0 {
		denom = math.Min(denom, -epsDenominator)
	} else {
		denom = math.Max(denom, epsDenominator)
	}
	return (mi - emi) / denom, nil
}

// expectedMutualInfo computes E[MI] over all contingency tables with the
// given margins under the hypergeometric model. The inner sum runs over the
// feasible cell values n_ij in [max(1, a_i+b_j-n), min(a_i, b_j)]; the n_ij=0
// term contributes nothing.
func expectedMutualInfo(rowSums, colSums map[int]int, n int) float64 {
	nf := float64(n)
	lgN := lgamma(nf + 1)
	var emi float64
	for _, ai := range rowSums {
		af := float64(ai)
		for _, bj := range colSums {
			bf := float64(bj)
			lo := ai + bj - n
			if lo < 1 {
				lo = 1
			}
			hi := ai
			if bj < hi {
				hi = bj
			}
			for nij := lo; nij <= hi; nij++ {
				jf := float64(nij)
				term := (jf / nf) * math.Log((nf*jf)/(af*bf))
				logProb := lgamma(af+1) + lgamma(bf+1) + lgamma(nf-af+1) + lgamma(nf-bf+1) -
					lgN - lgamma(jf+1) - lgamma(af-jf+1) - lgamma(bf-jf+1) - lgamma(nf-af-bf+jf+1)
				emi += term * math.Exp(logProb)
			}
		}
	}
	return emi
}

// lgamma wraps math.Lgamma, dropping the sign (arguments here are always
// positive, where Gamma is positive).
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// AdjustedRand computes the Rand index adjusted for chance. Range roughly
// [-1, 1]; 1 for identical partitions, ~0 for random ones.
func AdjustedRand(labelsTrue, labelsPred []int) (float64, error) {
	c, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, err
	}
	// Identical trivial clusterings: a single cluster on both sides, or
	// every sample its own cluster on both sides.
	if (len(c.rowSums) == 1 && len(c.colSums) == 1) ||
		(len(c.rowSums) == c.n && len(c.colSums) == c.n) {
		return 1.0, nil
	}

	var sumIdx, sumA, sumB float64
	for _, nij := range c.cells {
		sumIdx += comb2(nij)
	}
	for _, ai := range c.rowSums {
		sumA += comb2(ai)
	}
	for _, bj := range c.colSums {
		sumB += comb2(bj)
	}
	expected := sumA * sumB / comb2(c.n)
	maxIdx := (sumA + sumB) / 2
	return (sumIdx - expected) / (maxIdx - expected), nil
}

// FowlkesMallows computes the geometric mean of pairwise precision and
// recall. Range [0, 1]; 0 when no sample pair is co-clustered in both.
func FowlkesMallows(labelsTrue, labelsPred []int) (float64, error) {
	c, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, err
	}
	var tk, pk, qk float64
	for _, nij := range c.cells {
		tk += float64(nij) * float64(nij)
	}
	for _, ai := range c.rowSums {
		pk += float64(ai) * float64(ai)
	}
	for _, bj := range c.colSums {
		qk += float64(bj) * float64(bj)
	}
	n := float64(c.n)
	tk -= n
	pk -= n
	qk -= n
	if tk == 0 {
		return 0.0, nil
	}
	return tk / math.Sqrt(pk*qk), nil
}

// Homogeneity scores how much each predicted cluster contains only members
// of a single true class. Range [0, 1]. Asymmetric in the true/pred roles.
func Homogeneity(labelsTrue, labelsPred []int) (float64, error) {
	h, _, _, err := HomogeneityCompletenessVMeasure(labelsTrue, labelsPred)
	return h, err
}

// Completeness scores how much all members of a true class land in the same
// predicted cluster. Range [0, 1]. Asymmetric in the true/pred roles.
func Completeness(labelsTrue, labelsPred []int) (float64, error) {
	_, c, _, err := HomogeneityCompletenessVMeasure(labelsTrue, labelsPred)
	return c, err
}

// VMeasure is the harmonic mean of homogeneity and completeness. Range
// [0, 1]; symmetric.
func VMeasure(labelsTrue, labelsPred []int) (float64, error) {
	_, _, v, err := HomogeneityCompletenessVMeasure(labelsTrue, labelsPred)
	return v, err
}

// HomogeneityCompletenessVMeasure computes all three scores from a single
// contingency table. A zero-entropy marginal yields the conventional 1.0 for
// the corresponding score.
func HomogeneityCompletenessVMeasure(labelsTrue, labelsPred []int) (h, c, v float64, err error) {
	table, err := newContingency(labelsTrue, labelsPred)
	if err != nil {
		return 0, 0, 0, err
	}
	mi := table.mutualInfo()
	ht := entropyCounts(table.rowSums, table.n)
	hp := entropyCounts(table.colSums, table.n)

	h = 1.0
	if ht > 0 {
		h = mi / ht
	}
	c = 1.0
	if hp > 0 {
		c = mi / hp
	}
	if h+c > 0 {
		v = 2 * h * c / (h + c)
	}
	return h, c, v, nil
}

// comb2 returns n choose 2 as a float.
func comb2(n int) float64 {
	return float64(n) * float64(n-1) / 2
}
