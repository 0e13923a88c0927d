package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to TinyTracker (type 'help' for commands)")

	for {
		fmt.Print("tiny> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "feed":
			a.addFeeding(ctx)
		case "diaper":
			a.addDiaper(ctx)
		case "sleep":
			a.startSleep(ctx)
		case "wake":
			a.endSleep(ctx)
		case "growth":
			a.addGrowth(ctx)
		case "medical":
			a.addMedical(ctx)
		case "milestone":
			a.addMilestone(ctx)
		case "list":
			a.list(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "units":
			a.setUnits(ctx, args)
		case "identity":
			a.setIdentity(ctx)
		case "qr":
			a.showQR(ctx)
		case "scan":
			a.scan(ctx)
		case "code":
			a.showSyncCode(ctx)
		case "import":
			a.importSyncCode(ctx)
		case "backup":
			a.backup(ctx)
		case "pdf":
			a.importPDF(ctx, args)
		case "setkey":
			a.setAPIKey(ctx)
		case "clear":
			a.clearAll(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command %q (type 'help')\n", cmd)
		}
	}
}

func (a *App) help() {
	fmt.Println("Recording: feed, diaper, sleep, wake, growth, medical, milestone")
	fmt.Println("Browsing:  list [category], delete <category> <id>")
	fmt.Println("Sync:      qr, scan, code, import")
	fmt.Println("Data:      backup, pdf <path>, clear")
	fmt.Println("Settings:  units <metric|imperial>, identity, setkey")
	fmt.Println("Other:     help, exit")
}
