package report

import "github.com/samber/lo"

// labelsMatch reports whether every selector key is present in labels with
// an equal value. An empty selector matches nothing: a PDB without
// matchLabels selects no pods for this report's purposes.
func labelsMatch(selector, labels map[string]string) bool {
	if len(selector) == 0 {
		return false
	}
	for key, want := range selector {
		if got, ok := labels[key]; !ok || got != want {
			return false
		}
	}
	return true
}

// findMatchingPDB returns the first PDB, in listing order, whose selector
// matches the pod's labels in the pod's namespace. Listing order is the
// tie-break when several PDBs overlap; nothing ranks them by specificity.
func findMatchingPDB(pod PodRecord, pdbs []PDBRecord) (PDBRecord, bool) {
	candidates := lo.Filter(pdbs, func(pdb PDBRecord, _ int) bool {
		return pdb.Namespace == pod.Namespace && len(pdb.MatchLabels) > 0
	})
	for _, pdb := range candidates {
		if labelsMatch(pdb.MatchLabels, pod.Labels) {
			return pdb, true
		}
	}
	return PDBRecord{}, false
}

// resolvePriority looks a PriorityClass up by exact name.
func resolvePriority(name string, classes []PriorityClassRecord) (int32, bool) {
	if name == "" {
		return 0, false
	}
	for _, class := range classes {
		if class.Name == name {
			return class.Value, true
		}
	}
	return 0, false
}

// owningReplicaSet returns the name of the pod's first ReplicaSet owner
// reference, or "" if it has none.
func owningReplicaSet(pod PodRecord) string {
	for _, ref := range pod.OwnerReferences {
		if ref.Kind == "ReplicaSet" {
			return ref.Name
		}
	}
	return ""
}

// buildRow assembles one report row. The three lookups are independent; a
// miss in one never affects the others.
func buildRow(pod PodRecord, pdbs []PDBRecord, classes []PriorityClassRecord) Row {
	row := Row{
		PodName:       pod.Name,
		Namespace:     pod.Namespace,
		ReplicaSet:    owningReplicaSet(pod),
		PriorityClass: pod.PriorityClassName,
	}
	row.PriorityValue, row.HasPriority = resolvePriority(pod.PriorityClassName, classes)
	if pdb, ok := findMatchingPDB(pod, pdbs); ok {
		row.PDBName = pdb.Name
		row.MinAvailable = pdb.MinAvailable
		row.MaxUnavailable = pdb.MaxUnavailable
	}
	return row
}

// BuildReport produces exactly one row per pod, preserving pod listing
// order. The inputs are treated as read-only snapshots.
func BuildReport(pods []PodRecord, pdbs []PDBRecord, classes []PriorityClassRecord) []Row {
	return lo.Map(pods, func(pod PodRecord, _ int) Row {
		return buildRow(pod, pdbs, classes)
	})
}
