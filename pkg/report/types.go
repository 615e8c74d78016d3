// Package report builds the pod disruption report: one row per Pod,
// joined against PodDisruptionBudgets and PriorityClasses.
package report

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// PodRecord is the slice of a Pod this report cares about.
// PriorityClassName is empty when the Pod has no priority class.
type PodRecord struct {
	Name              string                  `json:"name"`
	Namespace         string                  `json:"namespace"`
	Labels            map[string]string       `json:"labels"`
	OwnerReferences   []metav1.OwnerReference `json:"owner_references"`
	PriorityClassName string                  `json:"priority_class_name"`
}

// PDBRecord carries a PodDisruptionBudget's exact-match selector and its
// availability thresholds. Thresholds keep the API's numeric-or-percentage
// string form ("2", "50%"); empty means the field was unset.
type PDBRecord struct {
	Name           string            `json:"name"`
	Namespace      string            `json:"namespace"`
	MatchLabels    map[string]string `json:"match_labels"`
	MinAvailable   string            `json:"min_available"`
	MaxUnavailable string            `json:"max_unavailable"`
}

// PriorityClassRecord is a cluster-scoped PriorityClass name/value pair.
type PriorityClassRecord struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

// Row is one line of the report. String fields are empty when absent and
// render as "N/A"; HasPriority distinguishes a resolved priority value of
// zero from no priority class at all.
type Row struct {
	PodName        string `json:"pod_name"`
	Namespace      string `json:"namespace"`
	ReplicaSet     string `json:"replicaset"`
	PriorityClass  string `json:"priority_class"`
	PriorityValue  int32  `json:"priority_value"`
	HasPriority    bool   `json:"has_priority"`
	PDBName        string `json:"pdb_name"`
	MinAvailable   string `json:"min_available"`
	MaxUnavailable string `json:"max_unavailable"`
}
