package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/platform/cache"
	"github.com/courtsight/courtsight/internal/platform/logging"
)

const (
	playersFile         = "atp_players.csv"
	currentRankingsFile = "atp_rankings_current.csv"
	seasonFilePrefix    = "atp_matches_"
)

// Loader reads the historical tabular archive from a directory. Parsed
// files are cached per path with a TTL; instances are fully independent.
// Missing season files degrade to empty results with a logged warning;
// only the current ranking file is a hard failure (§ the registry contract).
type Loader struct {
	dir    string
	logger *logging.Logger
	files  *cache.Store
}

func NewLoader(dir string, cacheTTL time.Duration, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{
		dir:    dir,
		logger: logger,
		files:  cache.NewStore(cacheTTL),
	}
}

// Players loads the player registry. A missing registry file degrades to an
// empty slice with a warning.
func (l *Loader) Players(ctx context.Context) ([]history.RegistryPlayer, error) {
	table, ok, err := l.readFile(ctx, playersFile)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.logger.WarnContext(ctx, "player registry file missing", "file", playersFile)
		return nil, nil
	}

	out := make([]history.RegistryPlayer, 0, len(table.Rows))
	for _, row := range table.Rows {
		out = append(out, history.RegistryPlayer{
			ID:        row["player_id"],
			FirstName: row["name_first"],
			LastName:  row["name_last"],
			Hand:      row["hand"],
			BirthDate: row["dob"],
			Country:   row["ioc"],
		})
	}
	return out, nil
}

// SeasonMatches loads the archive for one season. Missing files are an
// expected condition: empty result, logged warning, nil error.
func (l *Loader) SeasonMatches(ctx context.Context, year int) ([]history.RawHistoricalRow, error) {
	name := fmt.Sprintf("%s%d.csv", seasonFilePrefix, year)
	table, ok, err := l.readFile(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.logger.WarnContext(ctx, "season archive file missing", "file", name, "year", year)
		return nil, nil
	}

	out := make([]history.RawHistoricalRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		out = append(out, rowToHistorical(row))
	}
	return out, nil
}

// AvailableSeasons enumerates seasons by archive file presence.
func (l *Loader) AvailableSeasons() []int {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Warn("archive directory unreadable", "dir", l.dir, "error", err)
		return nil
	}

	var years []int
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, seasonFilePrefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, seasonFilePrefix), ".csv"))
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// CurrentRankings loads the current ranking snapshot. A missing file is the
// one genuine hard failure of the loader; callers fall back to an empty
// list at the call site.
func (l *Loader) CurrentRankings(ctx context.Context) ([]history.RankingRow, error) {
	table, ok, err := l.readFile(ctx, currentRankingsFile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, crerr.Newf("current ranking file %s is missing", currentRankingsFile)
	}
	return rankingRows(table), nil
}

// RankingsByDate filters the current snapshot on an exact hyphenated date.
func (l *Loader) RankingsByDate(ctx context.Context, isoDate string) ([]history.RankingRow, error) {
	compact, err := ISOToCompact(isoDate)
	if err != nil {
		return nil, err
	}
	rows, err := l.CurrentRankings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]history.RankingRow, 0, len(rows))
	for _, row := range rows {
		if row.Date == compact {
			out = append(out, row)
		}
	}
	return out, nil
}

// LatestRankingDate returns the newest ranking date in hyphenated form.
func (l *Loader) LatestRankingDate(ctx context.Context) (string, bool, error) {
	rows, err := l.CurrentRankings(ctx)
	if err != nil {
		return "", false, err
	}
	latest := ""
	for _, row := range rows {
		if row.Date > latest {
			latest = row.Date
		}
	}
	if latest == "" {
		return "", false, nil
	}
	iso, err := CompactToISO(latest)
	if err != nil {
		return "", false, err
	}
	return iso, true, nil
}

// readFile loads and parses one archive file through the TTL cache. The
// second return is false when the file does not exist.
func (l *Loader) readFile(ctx context.Context, name string) (Table, bool, error) {
	value, err := l.files.GetOrLoad(ctx, name, func(context.Context) (any, error) {
		path := filepath.Join(l.dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return Table{}, errFileMissing
			}
			return Table{}, crerr.Wrapf(err, "read archive file %s", name)
		}
		table, err := ReadDelimited(strings.NewReader(string(content)), ',')
		if err != nil {
			return Table{}, crerr.Wrapf(err, "parse archive file %s", name)
		}
		if table.Dropped > 0 {
			l.logger.Warn("dropped malformed archive rows", "file", name, "dropped", table.Dropped)
		}
		return table, nil
	})
	if err != nil {
		if crerr.Is(err, errFileMissing) {
			return Table{}, false, nil
		}
		return Table{}, false, err
	}
	table, _ := value.(Table)
	return table, true, nil
}

var errFileMissing = crerr.New("archive file missing")

func rankingRows(table Table) []history.RankingRow {
	out := make([]history.RankingRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		rank, _ := strconv.Atoi(row["rank"])
		points, _ := strconv.Atoi(row["points"])
		out = append(out, history.RankingRow{
			Date:     row["ranking_date"],
			Rank:     rank,
			PlayerID: row["player"],
			Points:   points,
		})
	}
	return out
}

func rowToHistorical(row Row) history.RawHistoricalRow {
	return history.RawHistoricalRow{
		TourneyID:   row["tourney_id"],
		TourneyName: row["tourney_name"],
		Surface:     row["surface"],
		DrawSize:    row["draw_size"],
		Level:       row["tourney_level"],
		TourneyDate: row["tourney_date"],
		MatchNum:    row["match_num"],

		WinnerID:      row["winner_id"],
		WinnerSeed:    row["winner_seed"],
		WinnerEntry:   row["winner_entry"],
		WinnerName:    row["winner_name"],
		WinnerHand:    row["winner_hand"],
		WinnerHeight:  row["winner_ht"],
		WinnerCountry: row["winner_ioc"],
		WinnerAge:     row["winner_age"],

		LoserID:      row["loser_id"],
		LoserSeed:    row["loser_seed"],
		LoserEntry:   row["loser_entry"],
		LoserName:    row["loser_name"],
		LoserHand:    row["loser_hand"],
		LoserHeight:  row["loser_ht"],
		LoserCountry: row["loser_ioc"],
		LoserAge:     row["loser_age"],

		Score:  row["score"],
		BestOf: row["best_of"],
		Round:  row["round"],

		WAce:     row["w_ace"],
		WDf:      row["w_df"],
		WSvpt:    row["w_svpt"],
		WFirstIn: row["w_1stIn"],
		WSvGms:   row["w_SvGms"],
		WBpSaved: row["w_bpSaved"],
		WBpFaced: row["w_bpFaced"],
		LAce:     row["l_ace"],
		LDf:      row["l_df"],
		LSvpt:    row["l_svpt"],
		LFirstIn: row["l_1stIn"],
		LSvGms:   row["l_SvGms"],
		LBpSaved: row["l_bpSaved"],
		LBpFaced: row["l_bpFaced"],

		WinnerRank:       row["winner_rank"],
		WinnerRankPoints: row["winner_rank_points"],
		LoserRank:        row["loser_rank"],
		LoserRankPoints:  row["loser_rank_points"],
	}
}
