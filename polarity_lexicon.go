package opine

// polarityEntry carries a word's pattern-lexicon scores: direction in
// [-1, 1] and subjectivity in [0, 1].
type polarityEntry struct {
	Polarity     float64
	Subjectivity float64
}

// polarityLexicon maps words to polarity/subjectivity pairs. Like the
// valence table it is built once and shared read-only.
type polarityLexicon map[string]polarityEntry

func newPolarityLexicon() polarityLexicon {
	return polarityLexicon{
		// Positive
		"amazing":     {0.6, 0.9},
		"awesome":     {1.0, 1.0},
		"beautiful":   {0.85, 1.0},
		"best":        {1.0, 0.3},
		"better":      {0.5, 0.5},
		"brilliant":   {0.9, 0.9},
		"charming":    {0.6, 0.9},
		"clean":       {0.4, 0.6},
		"clever":      {0.6, 0.8},
		"comfortable": {0.5, 0.7},
		"decent":      {0.3, 0.6},
		"delicious":   {1.0, 1.0},
		"delightful":  {0.9, 0.95},
		"easy":        {0.4, 0.8},
		"enjoyable":   {0.5, 0.6},
		"enjoyed":     {0.5, 0.5},
		"excellent":   {1.0, 1.0},
		"exciting":    {0.45, 0.8},
		"fantastic":   {0.9, 0.9},
		"fine":        {0.4, 0.5},
		"friendly":    {0.4, 0.6},
		"fun":         {0.3, 0.2},
		"glad":        {0.5, 1.0},
		"good":        {0.7, 0.6},
		"gorgeous":    {0.9, 1.0},
		"great":       {0.8, 0.75},
		"happy":       {0.8, 1.0},
		"helpful":     {0.4, 0.5},
		"hope":        {0.3, 0.5},
		"impressive":  {0.6, 0.9},
		"incredible":  {0.9, 0.9},
		"interesting": {0.5, 0.5},
		"kind":        {0.6, 0.9},
		"love":        {0.5, 0.6},
		"loved":       {0.6, 0.7},
		"lovely":      {0.7, 0.95},
		"loving":      {0.6, 0.7},
		"nice":        {0.6, 1.0},
		"okay":        {0.2, 0.5},
		"outstanding": {1.0, 1.0},
		"perfect":     {1.0, 1.0},
		"pleasant":    {0.7, 0.8},
		"pleased":     {0.6, 0.8},
		"pretty":      {0.25, 0.95},
		"reliable":    {0.4, 0.6},
		"satisfied":   {0.5, 0.7},
		"smart":       {0.5, 0.7},
		"smooth":      {0.4, 0.7},
		"special":     {0.36, 0.57},
		"strong":      {0.4, 0.5},
		"superb":      {0.9, 0.9},
		"sweet":       {0.35, 0.65},
		"useful":      {0.3, 0.2},
		"wonderful":   {1.0, 1.0},
		"worthwhile":  {0.4, 0.3},

		// Negative
		"angry":          {-0.5, 1.0},
		"annoying":       {-0.6, 0.9},
		"awful":          {-1.0, 1.0},
		"bad":            {-0.7, 0.67},
		"bland":          {-0.25, 0.45},
		"boring":         {-0.7, 1.0},
		"broke":          {-0.3, 0.4},
		"broken":         {-0.4, 0.6},
		"cheap":          {-0.4, 0.7},
		"defective":      {-0.6, 0.6},
		"difficult":      {-0.5, 1.0},
		"dirty":          {-0.6, 0.8},
		"disappointed":   {-0.6, 0.75},
		"disappointing":  {-0.65, 0.75},
		"disappointment": {-0.65, 0.75},
		"disgusting":     {-0.9, 1.0},
		"dreadful":       {-0.9, 1.0},
		"dull":           {-0.4, 0.6},
		"expensive":      {-0.3, 0.6},
		"fail":           {-0.5, 0.5},
		"failed":         {-0.5, 0.5},
		"failure":        {-0.6, 0.6},
		"fake":           {-0.5, 0.7},
		"hate":           {-0.8, 0.9},
		"hated":          {-0.9, 0.7},
		"hopeless":       {-0.7, 0.85},
		"horrible":       {-1.0, 1.0},
		"inferior":       {-0.5, 0.6},
		"mediocre":       {-0.35, 0.65},
		"miserable":      {-1.0, 1.0},
		"nasty":          {-0.8, 1.0},
		"painful":        {-0.7, 0.8},
		"pathetic":       {-0.8, 0.9},
		"poor":           {-0.4, 0.6},
		"sad":            {-0.5, 1.0},
		"slow":           {-0.3, 0.4},
		"terrible":       {-1.0, 1.0},
		"ugly":           {-0.7, 0.9},
		"unhappy":        {-0.6, 0.8},
		"useless":        {-0.5, 0.4},
		"waste":          {-0.4, 0.4},
		"weak":           {-0.5, 0.6},
		"weird":          {-0.3, 0.8},
		"worst":          {-1.0, 1.0},
		"worthless":      {-0.8, 0.7},
		"wrong":          {-0.5, 0.7},
	}
}
