package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proteinnetworks/insight/pkg/insight"
	"github.com/proteinnetworks/insight/pkg/parser"
	"github.com/proteinnetworks/insight/pkg/quality"
)

// newScoreCmd scores every level of a hierarchical partition against a
// reference domain annotation.
func newScoreCmd(a *app) *cobra.Command {
	var (
		domainsFile   string
		partitionFile string
		trials        int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score partition levels against reference domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := parser.ReadLabelsFile(domainsFile)
			if err != nil {
				return err
			}
			levels, err := parser.ReadPartitionLevelsFile(partitionFile)
			if err != nil {
				return err
			}

			if trials == 0 {
				trials = a.cfg.NumTrials
			}

			bestLevel := -1
			bestJaccard := math.Inf(-1)
			for i, level := range levels {
				jaccard, err := insight.ModifiedJaccard(domains, level)
				if err != nil {
					return fmt.Errorf("score level %d: %w", i, err)
				}
				zscore, err := insight.ZScore(domains, level, trials)
				if err != nil {
					return fmt.Errorf("z-score level %d: %w", i, err)
				}
				fmt.Printf("Level %d: jaccard=%.6f z=%.3f\n", i, jaccard, zscore)
				if jaccard > bestJaccard {
					bestJaccard = jaccard
					bestLevel = i
				}
			}
			fmt.Printf("Best level: %d (jaccard=%.6f)\n", bestLevel, bestJaccard)
			a.logger.Info("scored partition",
				zap.String("partition", partitionFile),
				zap.Int("levels", len(levels)),
				zap.Int("bestLevel", bestLevel))
			return nil
		},
	}
	cmd.Flags().StringVar(&domainsFile, "domains", "", "reference domain label file")
	cmd.Flags().StringVar(&partitionFile, "partition", "", "hierarchical partition file")
	cmd.Flags().IntVar(&trials, "trials", 0, "null model trials for the z-score (default from config)")
	_ = cmd.MarkFlagRequired("domains")
	_ = cmd.MarkFlagRequired("partition")
	return cmd
}

// newCompareCmd compares two partitions with information-theoretic metrics.
func newCompareCmd(a *app) *cobra.Command {
	var firstFile, secondFile string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two partitions with entropy, MI and NMI",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parser.ReadLabelsFile(firstFile)
			if err != nil {
				return err
			}
			second, err := parser.ReadLabelsFile(secondFile)
			if err != nil {
				return err
			}

			h1, err := insight.ShannonEntropy(first)
			if err != nil {
				return err
			}
			h2, err := insight.ShannonEntropy(second)
			if err != nil {
				return err
			}
			mi, err := insight.MutualInformation(first, second)
			if err != nil {
				return err
			}
			nmi, err := insight.NMI(first, second)
			if err != nil {
				return err
			}

			fmt.Printf("H(1)=%.6f H(2)=%.6f I=%.6f NMI=%.6f\n", h1, h2, mi, nmi)
			return nil
		},
	}
	cmd.Flags().StringVar(&firstFile, "first", "", "first partition label file")
	cmd.Flags().StringVar(&secondFile, "second", "", "second partition label file")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("second")
	return cmd
}

// newQualityCmd computes modularity and per-community conductance.
func newQualityCmd(a *app) *cobra.Command {
	var edgesFile, partitionFile string

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Compute modularity and conductance of a partition",
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := parser.ReadEdgeListFile(edgesFile)
			if err != nil {
				return err
			}
			partition, err := parser.ReadLabelsFile(partitionFile)
			if err != nil {
				return err
			}

			modularity, err := quality.ModularityFromEdges(edges, partition)
			if err != nil {
				return err
			}
			conductances, err := quality.ConductanceFromPartition(edges, partition)
			if err != nil {
				return err
			}

			fmt.Printf("Modularity: %.6f\n", modularity)
			for c, phi := range conductances {
				fmt.Printf("Community %d: conductance=%.6f\n", c+1, phi)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&edgesFile, "edges", "", "contact edge list file")
	cmd.Flags().StringVar(&partitionFile, "partition", "", "single-level partition label file")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("partition")
	return cmd
}
