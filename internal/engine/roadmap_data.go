package engine

type curriculumWeek struct {
	title string
	tasks []string
}

// curriculum is the fixed 24-week data-science roadmap.
var curriculum = [...]curriculumWeek{
	{"Week 1: Python Setup + Basics", []string{
		"Set up Python, VS Code, Git",
		"Python syntax: variables, control flow",
		"Functions, modules, virtualenv",
		"Mini-project: CLI calculator",
	}},
	{"Week 2: Data Structures + NumPy", []string{
		"Lists, dicts, sets, tuples",
		"NumPy arrays, vectorization",
		"Mini-project: Array ops notebook",
	}},
	{"Week 3: Pandas Core", []string{
		"Pandas Series/DataFrame",
		"Indexing, filtering, groupby",
		"Mini-project: Sales EDA",
	}},
	{"Week 4: Statistics I", []string{
		"Descriptive stats, distributions",
		"Probability, sampling",
		"Mini-project: A/B test simulation",
	}},
	{"Week 5: Visualization", []string{
		"Matplotlib/Seaborn basics",
		"Plot selection & story",
		"Mini-project: IMDB EDA",
	}},
	{"Week 6: SQL Basics", []string{
		"Select, where, group by, joins",
		"Window functions intro",
		"Mini-project: SQL case studies",
	}},
	{"Week 7: SQL Advanced", []string{
		"CTEs, window funcs advanced",
		"Optimization & indexes",
		"Mini-project: Analytics SQL",
	}},
	{"Week 8: ML Intro", []string{
		"Train/test split, CV, metrics",
		"Linear/logistic regression",
		"Mini-project: Classification",
	}},
	{"Week 9: Trees + Ensembles", []string{
		"Decision trees, RF, XGBoost",
		"Feature engineering",
		"Mini-project: Kaggle starter",
	}},
	{"Week 10: Unsupervised", []string{
		"Clustering, PCA",
		"Anomaly detection",
		"Mini-project: Customer segments",
	}},
	{"Week 11: Time Series", []string{
		"ETS/ARIMA basics",
		"Feature-based TS",
		"Mini-project: Forecasting",
	}},
	{"Week 12: Project 1 (EDA + ML)", []string{
		"End-to-end project repo",
		"Clean code, README, visuals",
	}},
	{"Week 13: PyTorch/TensorFlow Intro", []string{
		"Tensors, basic models",
		"Training loops",
		"Mini-project: MNIST",
	}},
	{"Week 14: MLOps Basics", []string{
		"Experiment tracking",
		"Pipelines with sklearn",
		"Intro to deployment",
	}},
	{"Week 15: Data Engineering Basics", []string{
		"APIs, data ingestion",
		"Airflow/Prefect basics",
		"Mini-project: ETL pipeline",
	}},
	{"Week 16: Project 2 (ML + Deployment)", []string{
		"Simple API for model",
		"Docker basics",
		"Cloud free tier deploy",
	}},
	{"Week 17: Feature Stores + Monitoring", []string{
		"Data drift, model drift",
		"Logging/alerts",
	}},
	{"Week 18: NLP or CV (choose one)", []string{
		"Tokenization/Embeddings or CNNs",
		"Mini-project: Text/CV",
	}},
	{"Week 19: Systems for DS", []string{
		"ML system design basics",
		"Batch vs streaming",
	}},
	{"Week 20: SQL + Python Interview", []string{
		"Leet-style SQL practice",
		"Pandas/NumPy drills",
	}},
	{"Week 21: Case Studies", []string{
		"Product analytics",
		"Experiment design, metrics",
	}},
	{"Week 22: Resume + Portfolio", []string{
		"Polish 2 projects",
		"Write case study blog",
	}},
	{"Week 23: Mock Interviews", []string{
		"Behavioral + tech mocks",
		"Communication practice",
	}},
	{"Week 24: Capstone", []string{
		"End-to-end DS project",
		"Deploy + writeup",
	}},
}
