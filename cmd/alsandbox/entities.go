package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/spatial"
	"github.com/spf13/cobra"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List the entities of the scene",
	Long:  `Loads the configured scene and lists every entity with its capabilities.`,
	RunE:  runEntities,
}

func runEntities(cmd *cobra.Command, args []string) error {
	w, err := setup(host.NewManualInput())
	if err != nil {
		return err
	}
	defer w.logger.Sync()

	storage := w.host.Storage()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCAPABILITIES\tSCRIPT\tACTIVE\tPOSITION")
	for _, id := range storage.Entities() {
		class := ""
		if ref := host.Get[host.ScriptRef](storage, id); ref != nil {
			class = ref.Class
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%s\n",
			id, storage.Name(id), storage.Mask(id), class, storage.Active(id), fmtVec(w.host.TransformPosition(id)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats := storage.CollectStats()
	fmt.Printf("\n%d entities in %d archetypes\n", stats.EntityCount, stats.ArchetypeCount)
	return nil
}

func fmtVec(v spatial.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
