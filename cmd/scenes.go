package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the scene catalogue with each scene's recommended settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(ctx.App.Writer, scene.List())
	return nil
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Size", "SPP", "Description"})
	for _, info := range scenes {
		table.Append([]string{
			info.ID,
			info.DisplayName,
			fmt.Sprintf("%dx%d", info.Config.Width, info.Config.Height),
			fmt.Sprintf("%d", info.Config.SamplesPerPixel),
			info.Description,
		})
	}
	table.Render()
}
