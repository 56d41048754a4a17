package main

import (
	"github.com/rs/zerolog/log"

	conversationx "github.com/matziplab/matzip-agent/agent/conversation"
	llmx "github.com/matziplab/matzip-agent/agent/llm"
	promptx "github.com/matziplab/matzip-agent/agent/prompt"
	retrieverx "github.com/matziplab/matzip-agent/agent/retriever"
	storex "github.com/matziplab/matzip-agent/agent/store"
	toolx "github.com/matziplab/matzip-agent/agent/tool"
	configx "github.com/matziplab/matzip-agent/pkg/config"
	logx "github.com/matziplab/matzip-agent/pkg/logger"
	openaix "github.com/matziplab/matzip-agent/pkg/openai"
	serverx "github.com/matziplab/matzip-agent/server"
)

type AppConfig struct {
	StoreDataPath string `envconfig:"STORE_DATA_PATH" split_words:"true" default:"data/store_info.json"`
}

func main() {
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	appCfg := configx.MustNew[AppConfig]("")

	openAICfg := configx.MustNew[openaix.Config]("OPENAI")
	client := openaix.NewClient(*openAICfg)
	if client == nil {
		log.Fatal().Msg("failed to initialize openai client")
	}

	registry, err := storex.Load(appCfg.StoreDataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", appCfg.StoreDataPath).Msg("failed to load store dataset")
	}
	log.Info().Int("stores", registry.Len()).Msg("store registry loaded")

	retrieverCfg := configx.MustNew[retrieverx.Config]("REVIEWDB")
	retriever, err := retrieverx.NewPostgres(*retrieverCfg, llmx.NewEmbedder(client, *openAICfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize review retriever")
	}
	defer retriever.Close()

	engine, err := conversationx.NewEngine(
		llmx.NewCompleter(client, *openAICfg),
		retriever,
		toolx.NewSet(registry),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize conversation engine")
	}

	service := conversationx.NewService(engine, conversationx.NewSessions(promptx.System()))

	serverCfg := configx.MustNew[serverx.Config]("SERVER")
	srv := serverx.New(*serverCfg, service)

	log.Info().Str("addr", serverCfg.Addr).Msg("matzip-agent listening")
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
