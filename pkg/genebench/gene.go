package genebench

// EvaluateGeneLevel classifies one gene's prediction as a whole.
//
// Perfect requires exact set equality of predicted and reference coordinate
// pairs (duplicates collapse). Partial requires at least half of the
// distinct reference intervals to be covered by some predicted exon at
// IoU >= 0.5; each reference earns its credit at most once, but a single
// predicted exon may credit several distinct references. Both flags are
// computed independently; the aggregator is responsible for treating
// perfect as exclusive of partial when tallying rates.
func EvaluateGeneLevel(pred []PredictedExon, ref []Interval) (GeneMatch, error) {
	if err := validatePredicted(pred, 0); err != nil {
		return GeneMatch{}, err
	}
	if err := validateIntervals(ref, 0); err != nil {
		return GeneMatch{}, err
	}

	predSet := make(map[Interval]bool, len(pred))
	for _, pe := range pred {
		predSet[pe.Interval()] = true
	}
	refSet := make(map[Interval]bool, len(ref))
	for _, rv := range ref {
		refSet[rv] = true
	}

	perfect := len(predSet) == len(refSet)
	if perfect {
		for iv := range refSet {
			if !predSet[iv] {
				perfect = false
				break
			}
		}
	}

	covered := 0
	for rv := range refSet {
		for pv := range predSet {
			if IoU(pv, rv) >= DefaultIoUThreshold {
				covered++
				break
			}
		}
	}
	partial := float64(covered) >= float64(len(refSet))*0.5

	return GeneMatch{Perfect: perfect, Partial: partial}, nil
}

// EvaluateGene runs all three evaluators for one (gene, prediction) pair.
func EvaluateGene(gene Gene, pred Prediction, threshold float64) (GeneEvaluation, error) {
	exon, err := EvaluateExonLevel(pred.Exons, gene.Exons, threshold)
	if err != nil {
		return GeneEvaluation{}, err
	}
	nuc, err := EvaluateNucleotideLevel(pred.Exons, gene.Exons, gene.RegionLength)
	if err != nil {
		return GeneEvaluation{}, err
	}
	match, err := EvaluateGeneLevel(pred.Exons, gene.Exons)
	if err != nil {
		return GeneEvaluation{}, err
	}

	return GeneEvaluation{
		GeneID:         gene.ID,
		Tool:           pred.Tool,
		Complexity:     gene.Complexity,
		Exon:           exon,
		Nucleotide:     nuc,
		Match:          match,
		RuntimeSeconds: pred.RuntimeSeconds,
		MemoryMB:       pred.MemoryMB,
	}, nil
}
