package iotaxdump

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxa"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

const (
	nodesFile    = "nodes.dmp"
	namesFile    = "names.dmp"
	mergedFile   = "merged.dmp"
	delnodesFile = "delnodes.dmp"
)

// Load reads a taxonomy dump from cfg's data directory and returns an
// immutable taxa.Store. Load is the single initialization step of the
// engine: it must not run concurrently with itself, and the store it
// returns never changes afterwards. Any malformed record, unknown
// parent reference, or parent cycle aborts the load.
func Load(ctx context.Context, cfg *config.Config) (taxa.Store, error) {
	start := time.Now()
	dir := cfg.DumpDir()

	for _, f := range []string{nodesFile, namesFile} {
		info, err := os.Stat(filepath.Join(dir, f))
		if err != nil || info.Size() == 0 {
			return nil, DumpNotFoundError(dir)
		}
	}

	jobs := cfg.JobsNumber
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	s := &store{
		byID:         make(map[taxa.TaxID]taxa.Taxon),
		children:     make(map[taxa.TaxID][]taxa.TaxID),
		namesByTaxon: make(map[taxa.TaxID][]taxa.NameRecord),
		byName:       make(map[string][]nameRef),
		byCanonical:  make(map[string][]nameRef),
		merged:       make(map[taxa.TaxID]taxa.TaxID),
		deleted:      make(map[taxa.TaxID]struct{}),
	}

	if err := s.loadNodes(ctx, dir, cfg.WithProgress); err != nil {
		return nil, err
	}
	if err := s.loadNames(ctx, dir, jobs, cfg.WithProgress); err != nil {
		return nil, err
	}
	if err := s.loadMerged(ctx, dir); err != nil {
		return nil, err
	}
	if err := s.loadDeleted(ctx, dir); err != nil {
		return nil, err
	}
	if err := s.finalize(cfg); err != nil {
		return nil, err
	}

	s.parsers = newParserPool(jobs)

	slog.Info("taxonomy loaded",
		"dir", dir,
		"taxa", humanize.Comma(int64(len(s.byID))),
		"merged", humanize.Comma(int64(len(s.merged))),
		"deleted", humanize.Comma(int64(len(s.deleted))),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return s, nil
}

// newParserPool fills a channel with gnparser instances. Instances
// are not safe for concurrent use, so query-time canonicalization
// borrows one from the channel.
func newParserPool(size int) chan gnparser.GNparser {
	pCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	pool := make(chan gnparser.GNparser, size)
	for range size {
		pool <- gnparser.New(pCfg)
	}
	return pool
}

// eachLine streams a dump file line by line. The reader is wrapped in
// a progress bar when requested; the bar tracks bytes, which is the
// only total known up front.
func eachLine(
	ctx context.Context,
	path string,
	progress bool,
	fn func(lineNo int, line string) error,
) error {
	f, err := os.Open(path)
	if err != nil {
		return OpenDumpError(path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	var bar *pb.ProgressBar
	if progress {
		if info, err := f.Stat(); err == nil {
			bar = pb.Full.Start64(info.Size())
			bar.Set("prefix", filepath.Base(path)+" ")
			bar.Set(pb.Bytes, true)
			bar.Set(pb.CleanOnFinish, true)
			reader = bar.NewProxyReader(f)
			defer bar.Finish()
		}
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo%100_000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return ReadDumpError(path, err)
	}
	return nil
}

func (s *store) loadNodes(ctx context.Context, dir string, progress bool) error {
	path := filepath.Join(dir, nodesFile)
	return eachLine(ctx, path, progress, func(lineNo int, line string) error {
		fields := splitFields(line)
		if len(fields) < 3 {
			return MalformedDumpError(path, lineNo,
				errors.New("node record needs at least 3 fields"))
		}
		id, err := parseTaxID(fields[0])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		parent, err := parseTaxID(fields[1])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		s.byID[id] = taxa.Taxon{
			ID:       id,
			ParentID: parent,
			Rank:     strings.ToLower(fields[2]),
		}
		return nil
	})
}

// nameEntry carries one parsed names.dmp record through the worker
// fan-out together with its canonical simple form.
type nameEntry struct {
	rec       taxa.NameRecord
	canonical string
}

// loadNames streams names.dmp into a pool of workers that compute
// canonical forms and name UUIDs, and a single collector that builds
// the indexes. Only the scan and the collect are sequential; the
// gnparser work, which dominates the load, runs on all workers.
func (s *store) loadNames(
	ctx context.Context,
	dir string,
	jobs int,
	progress bool,
) error {
	path := filepath.Join(dir, namesFile)

	chIn := make(chan taxa.NameRecord)
	chOut := make(chan nameEntry)

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return nameWorker(ctx, chIn, chOut)
		})
	}

	g.Go(func() error {
		for e := range chOut {
			s.addName(e)
		}
		return nil
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	err := eachLine(ctx, path, progress, func(lineNo int, line string) error {
		fields := splitFields(line)
		if len(fields) < 4 {
			return MalformedDumpError(path, lineNo,
				errors.New("name record needs 4 fields"))
		}
		id, err := parseTaxID(fields[0])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		rec := taxa.NameRecord{
			TaxonID: id,
			Name:    fields[1],
			Class:   strings.ToLower(fields[3]),
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chIn <- rec:
		}
		return nil
	})
	close(chIn)
	if err != nil {
		// drain workers before reporting the scan failure
		_ = g.Wait()
		return err
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// nameWorker computes the expensive per-name derivations: the
// canonical simple form via gnparser and the deterministic name UUID.
func nameWorker(
	ctx context.Context,
	chIn <-chan taxa.NameRecord,
	chOut chan<- nameEntry,
) error {
	pCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	parser := gnparser.New(pCfg)

	for rec := range chIn {
		rec.UUID = gnuuid.New(rec.Name).String()
		var canonical string
		if parsed := parser.ParseName(rec.Name); parsed.Parsed {
			canonical = strings.ToLower(parsed.Canonical.Simple)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- nameEntry{rec: rec, canonical: canonical}:
		}
	}
	return nil
}

// addName indexes one name record. Runs only on the collector
// goroutine.
func (s *store) addName(e nameEntry) {
	rec := e.rec
	ref := nameRef{id: rec.TaxonID, sci: rec.IsScientific()}

	if rec.IsScientific() {
		// the scientific name record also becomes the taxon's display name
		if t, ok := s.byID[rec.TaxonID]; ok && t.Name == "" {
			t.Name = rec.Name
			s.byID[rec.TaxonID] = t
		}
	}

	s.namesByTaxon[rec.TaxonID] = append(s.namesByTaxon[rec.TaxonID], rec)
	key := strings.ToLower(rec.Name)
	s.byName[key] = append(s.byName[key], ref)
	if e.canonical != "" && e.canonical != key {
		s.byCanonical[e.canonical] = append(s.byCanonical[e.canonical], ref)
	}
}

func (s *store) loadMerged(ctx context.Context, dir string) error {
	path := filepath.Join(dir, mergedFile)
	if _, err := os.Stat(path); err != nil {
		return nil // merged.dmp is optional
	}
	return eachLine(ctx, path, false, func(lineNo int, line string) error {
		fields := splitFields(line)
		if len(fields) < 2 {
			return MalformedDumpError(path, lineNo,
				errors.New("merge record needs 2 fields"))
		}
		old, err := parseTaxID(fields[0])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		target, err := parseTaxID(fields[1])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		s.merged[old] = target
		return nil
	})
}

func (s *store) loadDeleted(ctx context.Context, dir string) error {
	path := filepath.Join(dir, delnodesFile)
	if _, err := os.Stat(path); err != nil {
		return nil // delnodes.dmp is optional
	}
	return eachLine(ctx, path, false, func(lineNo int, line string) error {
		fields := splitFields(line)
		id, err := parseTaxID(fields[0])
		if err != nil {
			return MalformedDumpError(path, lineNo, err)
		}
		s.deleted[id] = struct{}{}
		return nil
	})
}

// finalize builds the child index, locates the root, verifies the
// hierarchy is a tree, sorts name records, and fixes the rank order.
func (s *store) finalize(cfg *config.Config) error {
	rootFound := false
	for id, t := range s.byID {
		if t.ParentID == id {
			if rootFound {
				return CycleError(uint32(id))
			}
			s.root = id
			rootFound = true
			continue
		}
		if _, ok := s.byID[t.ParentID]; !ok {
			return UnknownParentError(uint32(id), uint32(t.ParentID))
		}
		s.children[t.ParentID] = append(s.children[t.ParentID], id)
	}
	if !rootFound {
		return NoRootError()
	}

	for _, ch := range s.children {
		slices.Sort(ch)
	}
	for _, nn := range s.namesByTaxon {
		// scientific name first, then stable by name
		slices.SortStableFunc(nn, func(a, b taxa.NameRecord) int {
			if a.IsScientific() != b.IsScientific() {
				if a.IsScientific() {
					return -1
				}
				return 1
			}
			return strings.Compare(a.Name, b.Name)
		})
	}

	if err := s.validateAcyclic(); err != nil {
		return err
	}

	order, err := rankOrder(cfg)
	if err != nil {
		return err
	}
	s.order = order
	return nil
}

// validateAcyclic colors every parent chain. A node revisited while
// its own chain is still open closes a cycle, which makes the dump
// unusable: lineage resolution would never terminate.
func (s *store) validateAcyclic() error {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[taxa.TaxID]uint8, len(s.byID))
	var chain []taxa.TaxID

	for id := range s.byID {
		if state[id] != 0 {
			continue
		}
		chain = chain[:0]
		cur := id
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == visiting {
				return CycleError(uint32(cur))
			}
			state[cur] = visiting
			chain = append(chain, cur)

			t := s.byID[cur]
			if t.ParentID == cur {
				break
			}
			cur = t.ParentID
		}
		for _, v := range chain {
			state[v] = done
		}
	}
	return nil
}

func rankOrder(cfg *config.Config) (*ranks.Order, error) {
	path := cfg.Taxonomy.RankFile
	if path == "" {
		return ranks.New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, OpenDumpError(path, err)
	}
	return ranks.NewFromList(strings.Split(string(data), "\n")), nil
}
