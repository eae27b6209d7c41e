package service

import (
	"context"
	"fmt"

	"keychain-backend/internal/config"
	"keychain-backend/internal/fonts"
	"keychain-backend/internal/model"
	"keychain-backend/internal/renderer"
	"keychain-backend/internal/scad"
	"keychain-backend/pkg/logger"
)

// KeychainService runs the generation pipeline: sanitize the label, resolve
// the font, lay out the hole tab, synthesize the scene, render it.
type KeychainService struct {
	fonts    *fonts.Resolver
	renderer *renderer.Renderer
}

func NewKeychainService(cfg *config.Config) *KeychainService {
	return &KeychainService{
		fonts:    fonts.NewResolver(cfg.Renderer.FontsDir),
		renderer: renderer.New(cfg.Renderer),
	}
}

// Generate produces the named STL for one request. Every failure is a typed
// *model.PipelineError; no stage is retried.
func (s *KeychainService) Generate(ctx context.Context, p model.GenerationParams) (*model.GeneratedModel, error) {
	name := scad.SanitizeName(p.Name)
	logger.Infof("generating STL: name=%q font=%q", name, p.Font)

	// Resolve before anything touches the filesystem or spawns a process; an
	// unknown font must never start the engine.
	fontFile, err := s.fonts.Resolve(p.Font)
	if err != nil {
		return nil, err
	}

	offset := scad.HoleOffset(len(name), p.WidthOption, p.BorderThickness)
	scene := scad.Scene{
		Name:            name,
		Font:            fontFile,
		TextHeight:      p.TextHeight,
		BorderThickness: p.BorderThickness,
		WidthOption:     p.WidthOption,
		Offset:          offset,
	}
	program, err := scene.Program()
	if err != nil {
		return nil, model.NewPipelineError(model.KindUnhandledFault,
			"failed to synthesize scene", err.Error())
	}

	data, err := s.renderer.Render(ctx, program)
	if err != nil {
		return nil, err
	}

	logger.Infof("STL generated: len=%d offset=%.2f bytes=%d", len(name), offset, len(data))
	return &model.GeneratedModel{
		Filename: fmt.Sprintf("%s_%s.stl", name, fonts.DisplayName(p.Font)),
		Data:     data,
	}, nil
}
