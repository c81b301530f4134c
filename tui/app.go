package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"movietix-cli/auth"
	"movietix-cli/config"
	"movietix-cli/model"
	"movietix-cli/service"
	"movietix-cli/session"
	"movietix-cli/store"
)

// Out-of-band redirect: the user service shows the code for the user to
// paste back into the terminal instead of redirecting a browser.
const loginRedirectURI = "urn:ietf:wg:oauth:2.0:oob"

type appState int

const (
	stateLogin appState = iota
	stateFetchingLoginURL
	stateAwaitCode
	stateAuthenticating
	stateLoadingMovies
	stateSelectMovie
	stateLoadingShowtimes
	stateSelectShowtime
	stateLoadingSession
	stateSeatSelection
	stateBookingProgress
	stateLoadingBookings
	stateBookings
	stateProfile
	stateError
)

type appModel struct {
	client  *service.Client
	cfg     config.Config
	logger  *log.Logger
	session auth.Session

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList    list.Model
	showtimeList list.Model
	bookingList  list.Model
	codeInput    textinput.Model
	spinner      spinner.Model

	movie     model.Movie
	showtimes []showtimeEntry
	entry     showtimeEntry
	partial   int

	ctrl            *session.Controller
	cursor          cursorPos
	warning         string
	notice          string
	showSeatNumbers bool
	pollCtx         context.Context
	pollCancel      context.CancelFunc
	loginURL        string
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type loginURLMsg struct {
	url string
	err error
}

type loginMsg struct {
	session auth.Session
	err     error
}

type moviesMsg struct {
	movies []model.Movie
	err    error
}

type showtimesMsg struct {
	entries []showtimeEntry
	failed  int
	err     error
}

type sessionLoadedMsg struct {
	err error
}

type submitMsg struct {
	err error
}

type confirmedMsg struct {
	err error
}

type bookingsMsg struct {
	bookings []model.Booking
	err      error
}

// New builds the root model. The auth session decides whether the app
// starts on the login screen or straight at the catalog.
func New(cfg config.Config, client *service.Client, sess auth.Session, logger *log.Logger) tea.Model {
	m := appModel{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		session: sess,
		state:   stateLogin,
	}
	if sess.Valid(time.Now()) {
		m.state = stateLoadingMovies
	}

	m.movieList = newList("Now Showing")
	m.showtimeList = newList("Showtimes")
	m.bookingList = newList("My Bookings")

	input := textinput.New()
	input.Placeholder = "paste the authorization code"
	input.CharLimit = 256
	m.codeInput = input

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.showSeatNumbers = false
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateLoadingMovies {
		return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
	}
	return m.spinner.Tick
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateAwaitCode {
			return m.updateCodeInput(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		updated, cmd, handled := m.handleKey(msg)
		if handled {
			return updated, cmd
		}
		m = updated

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case loginURLMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateLogin)
		}
		m.loginURL = msg.url
		m.codeInput.SetValue("")
		m.state = stateAwaitCode
		_ = openURL(msg.url)
		return m, m.codeInput.Focus()

	case loginMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateLogin)
		}
		m.session = msg.session
		m.client.SetToken(msg.session.Token)
		if err := store.SaveAuth(msg.session); err != nil {
			m.logger.Warn("persist auth session", "err", err)
		}
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)

	case moviesMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateLogin)
		}
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.state = stateSelectMovie
		return m, nil

	case showtimesMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie)
		}
		if len(msg.entries) == 0 {
			return m, errWithOptionsCmd(
				fmt.Errorf("no showtimes available for %s", m.movie.Name),
				stateSelectMovie,
			)
		}
		m.showtimes = msg.entries
		m.partial = msg.failed
		m.showtimeList.Title = fmt.Sprintf("Showtimes • %s", m.movie.Name)
		m.showtimeList.SetItems(buildShowtimeItems(msg.entries))
		m.state = stateSelectShowtime
		return m, nil

	case sessionLoadedMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectShowtime)
		}
		m.cursor = cursorPos{row: 1, col: 1}
		m.warning = ""
		m.state = stateSeatSelection
		return m, nil

	case submitMsg:
		return m.handleSubmitResult(msg)

	case confirmedMsg:
		return m.handleConfirmation(msg)

	case bookingsMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie)
		}
		m.bookingList.SetItems(buildBookingItems(msg.bookings))
		m.state = stateBookings
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateBookings:
		m.bookingList, cmd = m.bookingList.Update(msg)
	case stateAwaitCode:
		m.codeInput, cmd = m.codeInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLogin:
		return header + "\n\n" + m.loginView()
	case stateAwaitCode:
		return header + "\n\n" + m.awaitCodeView()
	case stateFetchingLoginURL, stateAuthenticating, stateLoadingMovies,
		stateLoadingShowtimes, stateLoadingSession, stateLoadingBookings:
		return header + "\n\n" + m.loadingView()
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeListView()
	case stateSeatSelection:
		return header + "\n\n" + m.renderSeatSelection()
	case stateBookingProgress:
		return header + "\n\n" + m.bookingProgressView()
	case stateBookings:
		return header + "\n\n" + m.bookingsView()
	case stateProfile:
		return header + "\n\n" + m.profileView()
	case stateError:
		return header + "\n\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) +
			"\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("MovieTix")
	sub := []string{}
	if m.session.Authenticated() {
		sub = append(sub, fmt.Sprintf("User: %s", m.session.User.FirstName))
	}
	if m.movie.Name != "" && m.state != stateSelectMovie {
		sub = append(sub, fmt.Sprintf("Movie: %s", m.movie.Name))
	}
	if m.ctrl != nil && (m.state == stateSeatSelection || m.state == stateBookingProgress) {
		if theatre := m.ctrl.Theatre(); theatre.Name != "" {
			sub = append(sub, fmt.Sprintf("Theatre: %s", theatre.Name))
		}
		if screen := m.ctrl.Screen(); screen.ScreenNumber != "" {
			sub = append(sub, fmt.Sprintf("Screen %s", screen.ScreenNumber))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back"
	switch m.state {
	case stateSelectMovie:
		hints = "ctrl+c quit • type to filter • enter showtimes • ctrl+b bookings • ctrl+p profile"
	case stateSelectShowtime:
		hints = "ctrl+c quit • esc back • type to filter • enter select seats"
	case stateSeatSelection:
		hints = "arrows move • space toggle seat • c confirm • n numbers • r reload • esc back"
	case stateBookingProgress:
		hints = "esc abandon waiting • ctrl+c quit"
	case stateBookings:
		hints = "ctrl+c quit • esc back • type to filter"
	case stateProfile:
		hints = "enter sign out • esc back • ctrl+c quit"
	case stateAwaitCode:
		hints = "enter submit code • esc cancel • ctrl+c quit"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) loginView() string {
	card := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63"))
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("Welcome to MovieTix"),
		"",
		"Sign in to browse showtimes and book seats.",
		"",
		hint("Press ENTER to sign in with Google."),
	}, "\n")
	return card.Render(content)
}

func (m appModel) awaitCodeView() string {
	lines := []string{
		"A browser window was opened for Google sign-in.",
		"If it did not open, visit:",
		lipgloss.NewStyle().Underline(true).Render(m.loginURL),
		"",
		m.codeInput.View(),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) profileView() string {
	user := m.session.User
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(name),
		user.Email,
		"",
		hint("Press ENTER to sign out."),
	}
	return strings.Join(lines, "\n")
}

func (m appModel) showtimeListView() string {
	view := m.showtimeList.View()
	if detail := movieDetailLine(m.movie); detail != "" {
		view = hint(detail) + "\n\n" + view
	}
	if m.partial > 0 {
		view += "\n" + hint(fmt.Sprintf("%d showtimes hidden: venue lookup failed", m.partial))
	}
	return view
}

func movieDetailLine(movie model.Movie) string {
	parts := []string{}
	if len(movie.Genres) > 0 {
		parts = append(parts, strings.Join(movie.Genres, ", "))
	}
	if movie.RuntimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", movie.RuntimeMinutes))
	}
	if movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f", movie.Rating))
	}
	if movie.Description != "" {
		parts = append(parts, movie.Description)
	}
	return strings.Join(parts, " • ")
}

func (m appModel) bookingsView() string {
	view := m.bookingList.View()
	if m.notice != "" {
		confirmed := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
		view = confirmed.Render(m.notice) + "\n\n" + view
	}
	return view
}

func (m appModel) bookingProgressView() string {
	label := "Submitting booking"
	if m.ctrl != nil && m.ctrl.State() == session.StatePolling {
		label = fmt.Sprintf("Waiting for confirmation of booking #%d", m.ctrl.BookingId())
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), label,
		hint("The booking service confirms asynchronously; this can take a moment."))
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateFetchingLoginURL:
		title = "Contacting sign-in service"
	case stateAuthenticating:
		title = "Completing sign-in"
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingShowtimes:
		title = "Loading showtimes"
	case stateLoadingSession:
		title = "Loading seat map"
	case stateLoadingBookings:
		title = "Loading your bookings"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.cancelPolling()
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack()
	case "ctrl+b":
		if m.state == stateSelectMovie {
			m.state = stateLoadingBookings
			return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick), true
		}
	case "ctrl+p":
		if m.state == stateSelectMovie {
			m.state = stateProfile
			return m, nil, true
		}
	}

	if m.state == stateSeatSelection {
		return m.handleSeatKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateLogin:
			m.state = stateFetchingLoginURL
			return m, tea.Batch(m.fetchLoginURLCmd(), m.spinner.Tick), true
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			if err := store.RememberMovie(m.movie); err != nil {
				m.logger.Warn("remember movie", "err", err)
			}
			m.state = stateLoadingShowtimes
			return m, tea.Batch(m.fetchShowtimesCmd(m.movie.Id), m.spinner.Tick), true
		case stateSelectShowtime:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			return m.openSeatSelection(item.entry)
		case stateProfile:
			return m.signOut()
		}
	}
	return m, nil, false
}

func (m appModel) updateCodeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.codeInput.Blur()
		m.state = stateLogin
		return m, nil
	case "enter":
		code := strings.TrimSpace(m.codeInput.Value())
		if code == "" {
			return m, nil
		}
		m.codeInput.Blur()
		m.state = stateAuthenticating
		return m, tea.Batch(m.exchangeCodeCmd(code), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

func (m appModel) openSeatSelection(entry showtimeEntry) (appModel, tea.Cmd, bool) {
	if !m.session.Authenticated() {
		return m, errCmd(session.ErrNotAuthenticated), true
	}
	ctrl, err := session.New(session.Config{
		Theatre:      m.client,
		Booking:      m.client,
		User:         m.session.User,
		ShowtimeId:   entry.showtime.Id,
		PollInterval: m.cfg.PollInterval,
		Logger:       m.logger,
	})
	if err != nil {
		return m, errCmd(err), true
	}
	m.ctrl = ctrl
	m.entry = entry
	m.state = stateLoadingSession
	return m, tea.Batch(m.loadSessionCmd(), m.spinner.Tick), true
}

func (m appModel) handleSubmitResult(msg submitMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.cancelPolling()
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		// Failed state: back to the grid with a dismissible alert.
		m.state = stateSeatSelection
		return m, nil
	}
	return m, m.awaitConfirmationCmd()
}

func (m appModel) handleConfirmation(msg confirmedMsg) (tea.Model, tea.Cmd) {
	m.cancelPolling()
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		return m, errWithOptionsCmd(msg.err, stateSelectShowtime)
	}
	m.warning = ""
	if m.ctrl != nil {
		m.notice = fmt.Sprintf("Booking #%d confirmed. Enjoy the movie!", m.ctrl.BookingId())
	}
	m.ctrl = nil
	m.state = stateLoadingBookings
	return m, tea.Batch(m.fetchBookingsCmd(), m.spinner.Tick)
}

func (m appModel) signOut() (appModel, tea.Cmd, bool) {
	if err := store.ClearAuth(); err != nil {
		return m, errCmd(err), true
	}
	m.session = auth.Session{}
	m.client.SetToken("")
	m.movie = model.Movie{}
	m.ctrl = nil
	m.state = stateLogin
	return m, nil, true
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateAwaitCode, stateFetchingLoginURL:
		m.state = stateLogin
	case stateSelectShowtime:
		m.state = stateSelectMovie
	case stateSeatSelection:
		m.ctrl = nil
		m.warning = ""
		m.state = stateSelectShowtime
	case stateBookingProgress:
		// Abandons the wait, not the booking: the poll loop is cancelled
		// and the outcome can be checked on the bookings page later.
		m.cancelPolling()
		m.ctrl = nil
		m.state = stateSelectShowtime
	case stateBookings, stateProfile:
		m.notice = ""
		m.state = stateSelectMovie
	case stateError:
		m.state = m.lastState
	default:
		return m, nil, true
	}
	return m, nil, true
}

func (m *appModel) cancelPolling() {
	if m.pollCancel != nil {
		m.pollCancel()
		m.pollCancel = nil
		m.pollCtx = nil
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectShowtime:
		return &m.showtimeList
	case stateBookings:
		return &m.bookingList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateFetchingLoginURL, stateAuthenticating, stateLoadingMovies,
		stateLoadingShowtimes, stateLoadingSession, stateLoadingBookings,
		stateBookingProgress:
		return true
	default:
		return false
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithOptionsCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateFetchingLoginURL, stateAwaitCode, stateAuthenticating:
		return stateLogin
	case stateLoadingMovies:
		return stateLogin
	case stateLoadingShowtimes:
		return stateSelectMovie
	case stateLoadingSession, stateLoadingBookings:
		return stateSelectShowtime
	case stateError:
		return stateSelectMovie
	default:
		return state
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}

func (m appModel) fetchLoginURLCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		url, err := m.client.GetLoginURL(ctx, loginRedirectURI)
		return loginURLMsg{url: url, err: err}
	}
}

func (m appModel) exchangeCodeCmd(code string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := m.client.ExchangeCode(ctx, code, loginRedirectURI)
		if err != nil {
			return loginMsg{err: err}
		}
		return loginMsg{session: auth.Session{Token: result.AccessToken, User: result.User}}
	}
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadMovieCache(); err == nil && fresh && len(cached) > 0 {
			return moviesMsg{movies: cached}
		}
		ctx := context.Background()
		movies, err := m.client.GetMovies(ctx, service.MovieFilter{})
		if err == nil && len(movies) > 0 {
			_ = store.SaveMovieCache(movies)
		}
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) fetchShowtimesCmd(movieId int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		showtimes, err := m.client.GetShowtimes(ctx, movieId)
		if err != nil {
			if service.IsNotFound(err) {
				return showtimesMsg{}
			}
			return showtimesMsg{err: err}
		}
		entries, failed := enrichShowtimes(ctx, m.client, showtimes)
		return showtimesMsg{entries: entries, failed: failed}
	}
}

func (m appModel) loadSessionCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return sessionLoadedMsg{err: ctrl.Load(context.Background())}
	}
}

func (m appModel) fetchBookingsCmd() tea.Cmd {
	userId := m.session.User.Id
	return func() tea.Msg {
		ctx := context.Background()
		bookings, err := m.client.GetUserBookings(ctx, userId)
		if err != nil && service.IsNotFound(err) {
			return bookingsMsg{}
		}
		return bookingsMsg{bookings: bookings, err: err}
	}
}
