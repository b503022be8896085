package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/document"
	"github.com/vk/seqdoc/internal/engine"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Run loads the configured document and translates it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	root, err := document.Load(ctx, a.config.DocumentPath, document.Format(a.config.Format))
	if err != nil {
		return err
	}
	a.logger.Info("Document loaded.", "path", a.config.DocumentPath, "instances", root.Count())

	run, err := a.translator.TranslateDocument(ctx, root)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	a.logger.Info("Translation finished.", "run_id", run.ID(), "steps", len(run.Visited()))

	if a.config.PrintGlobals {
		if err := a.printGlobals(run); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printGlobals writes the variables of the global namespace as indented
// JSON. Built-in functions are not variables and are left out.
func (a *App) printGlobals(run *engine.Run) error {
	global, err := run.Store().Global()
	if err != nil {
		return err
	}
	obj := global.Object()

	raw, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return fmt.Errorf("failed to encode global namespace: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format global namespace: %w", err)
	}
	out.WriteByte('\n')
	_, err = a.outW.Write(out.Bytes())
	return err
}
