package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	schedulingv1 "k8s.io/api/scheduling/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/client-go/kubernetes/fake"
)

func TestCSVFlag(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags(nil))
	assert.Equal(t, defaultCSVPath, viper.GetString("csv"))

	require.NoError(t, rootCmd.ParseFlags([]string{"--csv", "/tmp/out.csv"}))
	assert.Equal(t, "/tmp/out.csv", viper.GetString("csv"))
}

func TestRejectsBadArguments(t *testing.T) {
	// positional arguments are a usage error
	assert.Error(t, rootCmd.ValidateArgs([]string{"stray"}))

	// so are unknown flags and a flag missing its value
	assert.Error(t, rootCmd.ParseFlags([]string{"--bogus"}))
	assert.Error(t, rootCmd.ParseFlags([]string{"--csv"}))
}

func TestRunReportWritesToGivenPath(t *testing.T) {
	minAvailable := intstr.FromInt32(2)
	client := fake.NewSimpleClientset(
		&corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{
				Name:            "api-7f",
				Namespace:       "prod",
				Labels:          map[string]string{"app": "api"},
				OwnerReferences: []metav1.OwnerReference{{Kind: "ReplicaSet", Name: "api-7f8d"}},
			},
			Spec: corev1.PodSpec{PriorityClassName: "high"},
		},
		&policyv1.PodDisruptionBudget{
			ObjectMeta: metav1.ObjectMeta{Name: "api-pdb", Namespace: "prod"},
			Spec: policyv1.PodDisruptionBudgetSpec{
				Selector:     &metav1.LabelSelector{MatchLabels: map[string]string{"app": "api"}},
				MinAvailable: &minAvailable,
			},
		},
		&schedulingv1.PriorityClass{
			ObjectMeta: metav1.ObjectMeta{Name: "high"},
			Value:      1000000,
		},
	)

	// run from a scratch working directory so the default-path check is clean
	workDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	defer func() {
		require.NoError(t, os.Chdir(origDir))
	}()

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	var out bytes.Buffer
	require.NoError(t, runReport(context.Background(), client, &out, csvPath))

	// TSV went to the given writer
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "api-7f\tprod\tapi-7f8d\thigh\t1000000\tapi-pdb\t2\tN/A", lines[1])

	// CSV went exactly to csvPath, and the default path was not created
	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t,
		"POD_NAME,NAMESPACE,REPLICASET,PRIORITY_CLASS,PRIORITY_VALUE,PDB_NAME,MIN_AVAILABLE,MAX_UNAVAILABLE\n"+
			"api-7f,prod,api-7f8d,high,1000000,api-pdb,2,N/A\n",
		string(raw))
	_, err = os.Stat(filepath.Join(workDir, defaultCSVPath))
	assert.True(t, os.IsNotExist(err))
}

func TestRunReportEmptyCluster(t *testing.T) {
	client := fake.NewSimpleClientset()
	csvPath := filepath.Join(t.TempDir(), "out.csv")

	var out bytes.Buffer
	require.NoError(t, runReport(context.Background(), client, &out, csvPath))
	assert.Equal(t, "POD_NAME\tNAMESPACE\tREPLICASET\tPRIORITY_CLASS\tPRIORITY_VALUE\tPDB_NAME\tMIN_AVAILABLE\tMAX_UNAVAILABLE\n", out.String())

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "POD_NAME,NAMESPACE,REPLICASET,PRIORITY_CLASS,PRIORITY_VALUE,PDB_NAME,MIN_AVAILABLE,MAX_UNAVAILABLE\n", string(raw))
}

func TestRunReportUnwritableCSVPath(t *testing.T) {
	client := fake.NewSimpleClientset()

	var out bytes.Buffer
	err := runReport(context.Background(), client, &out, filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}
