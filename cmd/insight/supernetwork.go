package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proteinnetworks/insight/pkg/parser"
	"github.com/proteinnetworks/insight/pkg/supernetwork"
)

// newSuperNetworkCmd builds (or fetches) the supernetwork of a protein.
func newSuperNetworkCmd(a *app) *cobra.Command {
	var (
		proteinRef    string
		partitionID   string
		edgesFile     string
		partitionFile string
		domainsFile   string
	)

	cmd := &cobra.Command{
		Use:   "supernetwork",
		Short: "Build the community-level graph of a protein",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePartitionID(partitionID)
			if err != nil {
				return err
			}
			edges, err := parser.ReadEdgeListFile(edgesFile)
			if err != nil {
				return err
			}
			levels, err := parser.ReadPartitionLevelsFile(partitionFile)
			if err != nil {
				return err
			}
			var domains []int
			if domainsFile != "" {
				if domains, err = parser.ReadLabelsFile(domainsFile); err != nil {
					return err
				}
			}

			source, err := supernetwork.NewHierarchy(proteinRef, id, levels, edges, domains)
			if err != nil {
				return err
			}

			s, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			sn, err := a.newBuilder(s).Build(source)
			if err != nil {
				return err
			}

			fmt.Printf("Protein %s partition %s: level %d, %d coarse edges\n",
				sn.ProteinRef, sn.PartitionID, sn.Level, len(sn.Edges))
			for _, e := range sn.Edges {
				fmt.Printf("%d %d %g\n", e.I, e.J, e.Weight)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&proteinRef, "protein", "", "protein reference, e.g. a PDB id")
	cmd.Flags().StringVar(&partitionID, "partition-id", "", "partition UUID (new one when omitted)")
	cmd.Flags().StringVar(&edgesFile, "edges", "", "contact edge list file")
	cmd.Flags().StringVar(&partitionFile, "partition", "", "hierarchical partition file")
	cmd.Flags().StringVar(&domainsFile, "domains", "", "reference domain label file")
	_ = cmd.MarkFlagRequired("protein")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("partition")
	return cmd
}

// newIsomorphsCmd scans the store for supernetworks matching a stored one.
func newIsomorphsCmd(a *app) *cobra.Command {
	var (
		proteinRef  string
		partitionID string
		weak        bool
	)

	cmd := &cobra.Command{
		Use:   "isomorphs",
		Short: "Find stored supernetworks isomorphic to a protein's",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(partitionID)
			if err != nil {
				return fmt.Errorf("parse partition id %q: %w", partitionID, err)
			}

			s, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			sn, found, err := s.Lookup(proteinRef, id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no supernetwork stored for %s/%s", proteinRef, id)
			}

			builder := a.newBuilder(s)
			if weak {
				matches, err := builder.FindWeakIsomorphs(sn, nil)
				if err != nil {
					return err
				}
				for _, m := range matches {
					fmt.Printf("%s %s %.6f\n", m.ProteinRef, m.OtherRef, m.Similarity)
				}
				a.logger.Info("weak isomorph scan complete",
					zap.String("proteinRef", proteinRef),
					zap.Int("matches", len(matches)))
				return nil
			}

			isomorphs, err := builder.FindIsomorphs(sn)
			if err != nil {
				return err
			}
			for _, ref := range isomorphs {
				fmt.Println(ref)
			}
			a.logger.Info("isomorph scan complete",
				zap.String("proteinRef", proteinRef),
				zap.Int("matches", len(isomorphs)))
			return nil
		},
	}
	cmd.Flags().StringVar(&proteinRef, "protein", "", "protein reference, e.g. a PDB id")
	cmd.Flags().StringVar(&partitionID, "partition-id", "", "partition UUID")
	cmd.Flags().BoolVar(&weak, "weak", false, "use maximum-common-subgraph similarity instead of exact isomorphism")
	_ = cmd.MarkFlagRequired("protein")
	_ = cmd.MarkFlagRequired("partition-id")
	return cmd
}

func parsePartitionID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("parse partition id %q: %w", value, err)
	}
	return id, nil
}
