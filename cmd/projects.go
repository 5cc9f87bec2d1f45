package cmd

import (
	"fmt"

	"industry-flow/internal/entities"
	"industry-flow/internal/render"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects of a running API",
	Long: `List projects with optional filters.

Empty filters and "all" leave a field unconstrained.`,
	Example: `  industry-flow projects --email ada@example.com --sector Energy
  industry-flow projects --stage proposal --sort-by deadline`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}

		var filter entities.ProjectFilter
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Sector, _ = cmd.Flags().GetString("sector")
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.Stage, _ = cmd.Flags().GetString("stage")
		filter.Client, _ = cmd.Flags().GetString("client")
		filter.SortBy, _ = cmd.Flags().GetString("sort-by")
		filter.Order, _ = cmd.Flags().GetString("order")

		projects, err := c.ListProjects(cmd.Context(), filter)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.ProjectTable(projects))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		p, err := c.GetProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Project(*p))
		return nil
	},
}

var projectMoveCmd = &cobra.Command{
	Use:   "move <id> <stage>",
	Short: "Move a project to another pipeline stage",
	Long: `Move a project to another pipeline stage.

Forward moves may only advance one stage at a time.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage := entities.PipelineStage(args[1])
		if !stage.Valid() {
			return fmt.Errorf("%w: unknown stage %q", entities.ErrInvalidArgument, args[1])
		}

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		p, err := c.ChangeProjectStage(cmd.Context(), args[0], stage)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.OK(fmt.Sprintf("%s is now in %s", p.Name, p.Stage)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectShowCmd, projectMoveCmd)

	for _, c := range []*cobra.Command{projectsCmd, projectShowCmd, projectMoveCmd} {
		addRemoteFlags(c)
	}

	projectsCmd.Flags().String("search", "", "Match name, client or description")
	projectsCmd.Flags().String("sector", "", "Filter by sector")
	projectsCmd.Flags().String("status", "", "Filter by status")
	projectsCmd.Flags().String("stage", "", "Filter by pipeline stage")
	projectsCmd.Flags().String("client", "", "Filter by client")
	projectsCmd.Flags().String("sort-by", "", "Sort by name, client, budget, revenue, deadline or created_at")
	projectsCmd.Flags().String("order", "", "Sort order (asc or desc)")
}
