package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/table"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"steam-library-manager/fileio"
	"steam-library-manager/inventory"
	"steam-library-manager/settings"
	"steam-library-manager/steam"
	"steam-library-manager/vdf"
)

var (
	steamFolder = flag.String("f", "", "path to the Steam installation folder")
	debug       = flag.Bool("d", false, "debug logging")
	ignoreCache = flag.Bool("c", false, "re-parse every manifest, ignoring the cache")
	noWorkshop  = flag.Bool("no-workshop", false, "hide the workshop content column")
	progressBar *progressbar.ProgressBar
)

type Console struct {
	settings    *settings.AppSettings
	sugarLogger *zap.SugaredLogger
}

func CreateConsole(appSettings *settings.AppSettings, sugarLogger *zap.SugaredLogger) *Console {
	return &Console{settings: appSettings, sugarLogger: sugarLogger}
}

func (c *Console) Start() int {
	flag.Parse()

	// command line options win over settings.json
	if steamFolder != nil && *steamFolder != "" {
		c.settings.SteamFolder = *steamFolder
	}
	if debug != nil && *debug {
		c.settings.Debug = true
	}
	if ignoreCache != nil && *ignoreCache {
		c.settings.IgnoreCache = true
	}
	if noWorkshop != nil && *noWorkshop {
		c.settings.ShowWorkshop = false
	}

	//1. locate the Steam installation
	steamRoot, err := c.settings.DetectSteamRoot()
	if err != nil {
		fmt.Printf("%v\n", err)
		return 1
	}
	fmt.Printf("Using Steam installation at [%v]\n", steamRoot)

	//2. read the library folders manifest
	refs, err := c.loadLibraryRefs(steamRoot)
	if err != nil {
		c.sugarLogger.Errorf("failed to read library folders - %v", err)
		fmt.Printf("failed to read library folders: %v\n", err)
		return 1
	}
	refs = c.filterIgnoredApps(refs)

	total := 0
	for _, ref := range refs {
		total += len(ref.Apps)
	}
	fmt.Printf("Found %d libraries with %d apps\n\n", len(refs), total)

	//3. open the manifest cache, scan degrades to full parsing without it
	cache, err := inventory.NewPersistentDB(c.settings.BaseFolder())
	if err != nil {
		c.sugarLogger.Warnf("failed to open manifest cache, continuing without - %v", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	//4. build the inventory
	progressBar = progressbar.New(total)
	manager := inventory.NewManager(cache, c.sugarLogger)
	inv := manager.Build(refs, fileio.Source{}, c, c.settings.IgnoreCache)
	progressBar.Finish()
	fmt.Printf("\n\n")

	//5. render the results
	c.printGames(inv)
	c.printLibraries(inv)
	c.printSkipped(inv)

	games := inv.Games()
	if len(games) == 0 && len(inv.Skipped) != 0 {
		return 1
	}
	return 0
}

func (c *Console) loadLibraryRefs(steamRoot string) ([]steam.LibraryRef, error) {
	raw, err := fileio.ReadManifest(fileio.LibraryFoldersPath(steamRoot))
	if err != nil {
		return nil, err
	}
	folders, err := vdf.Parse(string(raw))
	if err != nil {
		return nil, err
	}
	return steam.MapLibraries(folders)
}

func (c *Console) filterIgnoredApps(refs []steam.LibraryRef) []steam.LibraryRef {
	if len(c.settings.IgnoreAppIds) == 0 {
		return refs
	}
	ignore := map[string]struct{}{}
	for _, id := range c.settings.IgnoreAppIds {
		ignore[id] = struct{}{}
	}
	out := make([]steam.LibraryRef, 0, len(refs))
	for _, ref := range refs {
		kept := steam.LibraryRef{Path: ref.Path}
		for _, appID := range ref.Apps {
			if _, skip := ignore[appID]; skip {
				c.sugarLogger.Infof("ignoring app %v in %v", appID, ref.Path)
				continue
			}
			kept.Apps = append(kept.Apps, appID)
		}
		out = append(out, kept)
	}
	return out
}

func (c *Console) printGames(inv *inventory.Inventory) {
	games := inv.Games()
	if len(games) == 0 {
		fmt.Print("No installed games found.\n\n")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	if c.settings.ShowWorkshop {
		t.AppendHeader(table.Row{"#", "Name", "AppId", "State", "Library", "Size", "Workshop"})
	} else {
		t.AppendHeader(table.Row{"#", "Name", "AppId", "State", "Library", "Size"})
	}
	for i, game := range games {
		row := table.Row{i + 1, game.Name, game.AppID, game.State.String(), game.LibraryPath, inventory.ConvertSize(game.SizeBytes)}
		if c.settings.ShowWorkshop {
			workshop := ""
			if game.Workshop != nil {
				workshop = inventory.ConvertSize(game.Workshop.SizeBytes)
			}
			row = append(row, workshop)
		}
		t.AppendRow(row)
	}
	if c.settings.ShowWorkshop {
		t.AppendFooter(table.Row{"", "", "", "", "Total (incl. workshop)", inv.Size(), ""})
	} else {
		t.AppendFooter(table.Row{"", "", "", "", "Total (incl. workshop)", inv.Size()})
	}
	t.Render()
	fmt.Print("\n")
}

func (c *Console) printLibraries(inv *inventory.Inventory) {
	if len(inv.Libraries) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	t.AppendHeader(table.Row{"#", "Library", "Games", "Size (games only)"})
	var total uint64
	for i, lib := range inv.Libraries {
		total += lib.SizeBytes()
		t.AppendRow(table.Row{i + 1, lib.Path, len(lib.Games), inventory.ConvertSize(lib.SizeBytes())})
	}
	t.AppendFooter(table.Row{"", "", "Total", inventory.ConvertSize(total)})
	t.Render()
	fmt.Print("\n")
}

func (c *Console) printSkipped(inv *inventory.Inventory) {
	if len(inv.Skipped) == 0 {
		return
	}
	fmt.Print("Skipped apps:\n\n")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	t.AppendHeader(table.Row{"#", "AppId", "Library", "Reason"})
	for i, item := range inv.Skipped {
		t.AppendRow(table.Row{i + 1, item.AppID, item.LibraryPath, item.Err.Error()})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(inv.Skipped)})
	t.Render()
	fmt.Print("\n")
}

func (c *Console) UpdateProgress(curr int, total int, message string) {
	progressBar.ChangeMax(total)
	progressBar.Set(curr)
}
