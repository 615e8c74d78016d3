package report

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	schedulingv1 "k8s.io/api/scheduling/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetPods lists every Pod in the cluster.
func GetPods(ctx context.Context, client kubernetes.Interface) ([]PodRecord, error) {
	pods, err := client.CoreV1().Pods("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing pods: %w", err)
	}
	return lo.Map(pods.Items, func(pod corev1.Pod, _ int) PodRecord {
		return PodRecord{
			Name:              pod.Name,
			Namespace:         pod.Namespace,
			Labels:            pod.Labels,
			OwnerReferences:   pod.OwnerReferences,
			PriorityClassName: pod.Spec.PriorityClassName,
		}
	}), nil
}

// GetPDBs lists every PodDisruptionBudget in the cluster. Only exact-match
// selectors (matchLabels) are carried; thresholds keep their
// numeric-or-percentage string form.
func GetPDBs(ctx context.Context, client kubernetes.Interface) ([]PDBRecord, error) {
	pdbs, err := client.PolicyV1().PodDisruptionBudgets("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing poddisruptionbudgets: %w", err)
	}
	return lo.Map(pdbs.Items, func(pdb policyv1.PodDisruptionBudget, _ int) PDBRecord {
		record := PDBRecord{
			Name:      pdb.Name,
			Namespace: pdb.Namespace,
		}
		if pdb.Spec.Selector != nil {
			record.MatchLabels = pdb.Spec.Selector.MatchLabels
		}
		if pdb.Spec.MinAvailable != nil {
			record.MinAvailable = pdb.Spec.MinAvailable.String()
		}
		if pdb.Spec.MaxUnavailable != nil {
			record.MaxUnavailable = pdb.Spec.MaxUnavailable.String()
		}
		return record
	}), nil
}

// GetPriorityClasses lists every PriorityClass (cluster-scoped).
func GetPriorityClasses(ctx context.Context, client kubernetes.Interface) ([]PriorityClassRecord, error) {
	classes, err := client.SchedulingV1().PriorityClasses().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing priorityclasses: %w", err)
	}
	return lo.Map(classes.Items, func(class schedulingv1.PriorityClass, _ int) PriorityClassRecord {
		return PriorityClassRecord{
			Name:  class.Name,
			Value: class.Value,
		}
	}), nil
}
