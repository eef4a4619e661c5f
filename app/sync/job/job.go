package job

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"frc-link/app/server/constants"
	"frc-link/app/server/models"
	"frc-link/app/tba"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RosterSource 是同步任务依赖的上游数据源，由 tba.Client 实现
type RosterSource interface {
	TeamsPage(ctx context.Context, page int) ([]tba.SimpleTeam, error)
	Team(ctx context.Context, teamNum int) (*tba.TeamBundle, error)
}

type Options struct {
	Concurrency int  // worker 数，同时是对上游的并发请求上限
	DryRun      bool // 只统计不写库
	MaxPages    int  // 花名册翻页上限，0 表示不限制
	LimitTeams  int  // 处理队伍数上限，0 表示不限制
}

// Result 是一次运行（或单个 worker ）的统计
type Result struct {
	InsertedInfo  int // 写入的资料行数
	InsertedLinks int // 写入的链接行数
	Skipped       int // 上游没有公开数据而跳过的队伍数
	Failed        int // 处理失败的队伍数
}

func (r *Result) add(o *Result) {
	r.InsertedInfo += o.InsertedInfo
	r.InsertedLinks += o.InsertedLinks
	r.Skipped += o.Skipped
	r.Failed += o.Failed
}

type Job struct {
	l    *zap.Logger
	db   *gorm.DB
	src  RosterSource
	opts Options
}

func New(l *zap.Logger, db *gorm.DB, src RosterSource, opts Options) *Job {
	if opts.Concurrency < 1 {
		opts.Concurrency = 3
	}
	return &Job{
		l:    l,
		db:   db,
		src:  src,
		opts: opts,
	}
}

// Run 把本地库与上游花名册对齐：找出本地缺失的队伍，按配置的并发抓取并写入。
// 单支队伍的失败只计数不中断，整个批次总是跑完。
func (j *Job) Run(ctx context.Context) (*Result, error) {
	// 本地已有的队伍编号
	var existingNums []int
	if err := j.db.WithContext(ctx).Model(&models.TeamInfo{}).Pluck("team_num", &existingNums).Error; err != nil {
		return nil, err
	}
	existing := make(map[int]struct{}, len(existingNums))
	for _, num := range existingNums {
		existing[num] = struct{}{}
	}
	j.l.Info("existing teams in store", zap.Int("count", len(existing)))

	// 上游花名册
	roster := j.fetchRoster(ctx)
	j.l.Info("teams reported by upstream", zap.Int("count", len(roster)))

	// 差集，升序处理保证运行顺序可复现
	var missing []int
	for _, num := range roster {
		if _, ok := existing[num]; !ok {
			missing = append(missing, num)
		}
	}
	sort.Ints(missing)
	j.l.Info("teams missing from store", zap.Int("count", len(missing)))

	if len(missing) == 0 {
		j.l.Info("no missing teams to sync")
		return &Result{}, nil
	}

	// 可选的处理上限，用于测试或有界运行
	limit := len(missing)
	if j.opts.LimitTeams > 0 && j.opts.LimitTeams < limit {
		limit = j.opts.LimitTeams
	}

	// 固定数量的 worker 从同一个游标认领下标，慢队伍不会拖住其他 worker
	var (
		cursor    atomic.Int64
		processed atomic.Int64
		wg        sync.WaitGroup
	)
	results := make([]Result, j.opts.Concurrency)
	for w := 0; w < j.opts.Concurrency; w++ {
		wg.Add(1)
		go func(workerID int, res *Result) {
			defer wg.Done()
			for {
				i := int(cursor.Add(1) - 1)
				if i >= limit {
					return
				}

				j.syncTeam(ctx, workerID, missing[i], res)

				// 进度只是观测信号，不参与正确性
				if p := processed.Add(1); p%25 == 0 {
					j.l.Info("progress",
						zap.Int64("processed", p),
						zap.Int("total", limit),
					)
				}
			}
		}(w+1, &results[w])
	}
	wg.Wait()

	// 汇总每个 worker 的独立统计，避免共享可变计数
	total := &Result{}
	for w := range results {
		total.add(&results[w])
	}

	j.l.Info("sync done",
		zap.Int("insertedInfo", total.InsertedInfo),
		zap.Int("insertedLinks", total.InsertedLinks),
		zap.Int("skipped", total.Skipped),
		zap.Int("failed", total.Failed),
	)

	return total, nil
}

// fetchRoster 翻页拉取完整花名册，空页结束；失败页直接提前终止翻页，不重试
func (j *Job) fetchRoster(ctx context.Context) []int {
	var nums []int
	for page := 0; ; page++ {
		if j.opts.MaxPages > 0 && page >= j.opts.MaxPages {
			break
		}

		teams, err := j.src.TeamsPage(ctx, page)
		if err != nil {
			j.l.Error("failed to fetch teams page, stopping pagination", zap.Int("page", page), zap.Error(err))
			break
		}
		if len(teams) == 0 {
			break
		}

		for _, t := range teams {
			nums = append(nums, t.TeamNumber)
		}
		j.l.Info("fetched roster page",
			zap.Int("page", page),
			zap.Int("teams", len(teams)),
			zap.Int("totalSoFar", len(nums)),
		)
	}
	return nums
}

// syncTeam 处理一支队伍：抓组合包，写一行资料和它的链接。
// 链接写入失败只记录，不影响同队其余链接；其他失败计入 failed 。
func (j *Job) syncTeam(ctx context.Context, workerID int, teamNum int, res *Result) {
	bundle, err := j.src.Team(ctx, teamNum)
	if err != nil {
		j.l.Error("failed to sync team",
			zap.Int("workerID", workerID),
			zap.Int("teamNum", teamNum),
			zap.Error(err),
		)
		res.Failed++
		return
	}
	if bundle == nil || len(bundle.Info) == 0 {
		j.l.Warn("no upstream data for team, skipping", zap.Int("teamNum", teamNum))
		res.Skipped++
		return
	}

	info := bundle.Info[0]
	if info.PrimaryColor == "" {
		info.PrimaryColor = constants.DefaultPrimaryCol
	}
	if info.SecondaryColor == "" {
		info.SecondaryColor = constants.DefaultSecondaryCol
	}

	if !j.opts.DryRun {
		if err := j.db.WithContext(ctx).Create(&models.TeamInfo{
			TeamNum:      teamNum,
			FullName:     info.TeamFullName,
			Pfp:          info.Pfp,
			Description:  info.Description,
			Location:     info.Location,
			PrimaryCol:   info.PrimaryColor,
			SecondaryCol: info.SecondaryColor,
			UID:          models.AutoPopulatedUID,
		}).Error; err != nil {
			j.l.Error("failed to insert team info",
				zap.Int("workerID", workerID),
				zap.Int("teamNum", teamNum),
				zap.Error(err),
			)
			res.Failed++
			return
		}
	}
	res.InsertedInfo++

	for _, link := range bundle.Links {
		if !j.opts.DryRun {
			if err := j.db.WithContext(ctx).Create(&models.TeamLink{
				TeamNum:     teamNum,
				Icon:        link.Icon,
				Title:       link.Title,
				Description: link.Description,
				URL:         link.URL,
				UID:         models.AutoPopulatedUID,
			}).Error; err != nil {
				// 链接级失败不影响同队其余链接
				j.l.Warn("failed to insert link",
					zap.Int("workerID", workerID),
					zap.Int("teamNum", teamNum),
					zap.String("url", link.URL),
					zap.Error(err),
				)
				continue
			}
		}
		res.InsertedLinks++
	}
}
