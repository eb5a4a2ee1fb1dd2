package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"themeplane/config"
	"themeplane/model"
	"themeplane/palette"
	"themeplane/resource"
	"themeplane/storage"
	"themeplane/theme"
)

//go:embed themes
var themesFS embed.FS

var (
	dataDir    string
	listen     string
	listenPort int
	variant    string
	webRoot    string
	themesDir  string
	library    string
	name       string
	input      string
	appVersion = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "themeplane",
	Short: "themeplane – PrimeFaces theme rewriting server",
	Long:  "Themeplane serves PrimeFaces themes, replacing their palette, icons or the whole theme on the fly.",
	RunE:  run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "Manage themeplane configuration files.",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a default configuration file",
	Long:  "Generate a default themeplane.yaml file in the specified data directory (or current directory if not specified).",
	RunE:  runConfigGenerate,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a theme resource to stdout",
	Long:  "Run a resource through the configured rewriting chain and print the result.",
	RunE:  runRender,
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the colors used by a stylesheet",
	Long:  "Scan a stylesheet (a file or a theme library) for hex colors and print them with a matching find values string.",
	RunE:  runPalette,
}

func init() {
	wd, _ := os.Getwd()
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", wd, "Data directory holding themeplane.yaml (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "Theme variant: passthrough, fontawesome, replace or notheme")
	rootCmd.PersistentFlags().StringVar(&webRoot, "web-root", "", "Directory appended CSS files are read from")
	rootCmd.PersistentFlags().StringVar(&themesDir, "themes-dir", "", "Directory with theme libraries (default: built-in themes)")
	rootCmd.Flags().StringVar(&listen, "listen", "all", "IP address to listen on (default: all)")
	rootCmd.Flags().IntVar(&listenPort, "listen-port", 8080, "Port to listen on (default: 8080)")

	renderCmd.Flags().StringVar(&library, "library", "primefaces-jepsar", "Library of the resource")
	renderCmd.Flags().StringVar(&name, "name", resource.ThemeName, "Name of the resource")

	paletteCmd.Flags().StringVar(&input, "input", "", "Stylesheet file to scan (default: theme of --library)")
	paletteCmd.Flags().StringVar(&library, "library", "primefaces-jepsar", "Library whose theme is scanned")

	configCmd.AddCommand(configGenerateCmd)
	rootCmd.AddCommand(configCmd, renderCmd, paletteCmd)
}

// loadConfig loads the configuration and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("listen") || cmd.Flags().Changed("listen-port") {
		if listen != "" && listen != "all" {
			cfg.ListenAddr = net.JoinHostPort(listen, fmt.Sprint(listenPort))
		} else {
			cfg.ListenAddr = fmt.Sprintf(":%d", listenPort)
		}
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = model.Variant(variant)
	}
	if cmd.Flags().Changed("web-root") {
		cfg.WebRoot = webRoot
	}
	if cmd.Flags().Changed("themes-dir") {
		cfg.ThemesDir = themesDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type chain struct {
	manager  *theme.Manager
	resolver resource.Resolver
	charset  resource.Charset
}

// newManager loads the theme libraries from the configured themes directory,
// or from the built-in themes when none is set.
func newManager(cfg config.Config, log *zap.Logger) (*theme.Manager, error) {
	var (
		fsys fs.FS = themesFS
		dir        = "themes"
	)
	if cfg.ThemesDir != "" {
		fsys, dir = os.DirFS(cfg.ThemesDir), "."
	}
	manager, err := theme.NewManager(fsys, dir, log)
	if err != nil {
		return nil, fmt.Errorf("initialize theme manager: %w", err)
	}
	return manager, nil
}

// buildChain wires the theme store, the web root and the rewriting resolver.
func buildChain(cfg config.Config, cache *resource.Cache, log *zap.Logger) (*chain, error) {
	manager, err := newManager(cfg, log)
	if err != nil {
		return nil, err
	}

	charset, err := resource.LookupCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}

	env := &resource.Env{
		Params:  resource.MapParams(cfg.Params),
		Charset: charset,
		Cache:   cache,
		Log:     log,
	}
	if cfg.WebRoot != "" {
		root, err := filepath.Abs(cfg.WebRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve web root: %w", err)
		}
		store := storage.New(root)
		loc, ok := cfg.Params[resource.ParamAppendCSSFile]
		if ok && cfg.Variant != model.VariantPassthrough && !store.Exists(loc) {
			return nil, fmt.Errorf("%s: %s not found in %s", resource.ParamAppendCSSFile, loc, root)
		}
		env.Files = store
	}

	resolver, err := resource.NewResolver(cfg.Variant, manager, env)
	if err != nil {
		return nil, err
	}
	return &chain{manager: manager, resolver: resolver, charset: charset}, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// one cache for the lifetime of the process
	cache := resource.NewCache()
	c, err := buildChain(cfg, cache, log)
	if err != nil {
		return err
	}
	log.Info("Serving themes",
		zap.String("variant", string(cfg.Variant)),
		zap.String("charset", c.charset.Name()),
		zap.Strings("libraries", c.manager.ListLibraries()))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mux := http.NewServeMux()
	theme.NewHandler(c.manager, c.resolver, c.charset, log).Register(mux)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	printListeningAddresses(log, cfg.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown", zap.Error(err))
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := cfg.Logging.PrepareStderr()
	if err != nil {
		return err
	}
	c, err := buildChain(cfg, resource.NewCache(), log)
	if err != nil {
		return err
	}
	res, err := c.resolver.CreateResource(name, library)
	if err != nil {
		return err
	}
	data, err := res.Bytes()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runPalette(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if input != "" {
		data, err = os.ReadFile(input)
	} else {
		data, err = readLibraryTheme(cmd, library)
	}
	if err != nil {
		return err
	}

	usages, err := palette.ScanColors(data)
	if err != nil {
		return fmt.Errorf("scan colors: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, u := range usages {
		fmt.Fprintf(out, "%s\t%d\n", u.Color, u.Count)
	}
	fmt.Fprintf(out, "\n%s=%s\n", resource.ParamFindValues, palette.FindValues(usages))
	return nil
}

// readLibraryTheme returns the unmodified theme stylesheet of a library from
// the configured theme store.
func readLibraryTheme(cmd *cobra.Command, lib string) ([]byte, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := cfg.Logging.PrepareStderr()
	if err != nil {
		return nil, err
	}
	manager, err := newManager(cfg, log)
	if err != nil {
		return nil, err
	}
	res, err := manager.CreateResource(resource.ThemeName, lib)
	if err != nil {
		return nil, err
	}
	return res.Bytes()
}

func runConfigGenerate(cmd *cobra.Command, args []string) error {
	dataDirAbs, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := config.Default()
	cfg.DataDir = dataDirAbs

	cfgPath := filepath.Join(dataDirAbs, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgPath)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfgPath)
	return nil
}

func printListeningAddresses(log *zap.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		log.Info("Listening", zap.String("url", "http://"+addr))
		return
	}

	if host != "" && host != "0.0.0.0" && host != "::" {
		log.Info("Listening", zap.String("url", "http://"+net.JoinHostPort(host, port)))
		return
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Info("Listening", zap.String("url", "http://0.0.0.0:"+port))
		return
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			log.Info("Listening", zap.String("url", "http://"+net.JoinHostPort(ipnet.IP.String(), port)))
		}
	}
	log.Info("Listening", zap.String("url", "http://localhost:"+port))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
