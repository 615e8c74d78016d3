// Package kube constructs the Kubernetes client used by the report.
package kube

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	ctrl "sigs.k8s.io/controller-runtime"
)

// GetClient returns a clientset for the ambient cluster, trying the
// kubeconfig paths first and falling back to in-cluster config.
func GetClient() (kubernetes.Interface, error) {
	kubeConf, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("fetching KubeConfig: %w", err)
	}

	client, err := kubernetes.NewForConfig(kubeConf)
	if err != nil {
		return nil, fmt.Errorf("creating Kubernetes client: %w", err)
	}
	return client, nil
}
