package shkit

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/shkit/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFS embed.FS

// installTopics adds the embedded help pages to "shkit help"
func installTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(helpFS, "help")
	if err != nil {
		return err
	}
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	return topics.Install(rootCmd, topics.New(sub, opts))
}
